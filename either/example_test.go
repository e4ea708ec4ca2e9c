package either_test

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/abevier/outcome/either"
)

func parsePort(s string) either.Either[int, string] {
	p, err := strconv.Atoi(s)
	if err != nil {
		return either.Error[int]("not a number: " + s)
	}
	if p < 1 || p > 65535 {
		return either.Error[int]("out of range: " + s)
	}
	return either.Result[int, string](p)
}

func ExampleMatch() {
	for _, in := range []string{"8080", "http", "70000"} {
		msg, _ := either.Match(parsePort(in),
			func(p int) string { return fmt.Sprintf("listening on %d", p) },
			func(reason string) string { return "rejected, " + reason },
		)
		fmt.Println(msg)
	}
	// Output:
	// listening on 8080
	// rejected, not a number: http
	// rejected, out of range: 70000
}

func ExampleEither_ResultOr() {
	fmt.Println(parsePort("443").ResultOr(80))
	fmt.Println(parsePort("").ResultOr(80))
	// Output:
	// 443
	// 80
}

func ExampleEither_Handle() {
	err := parsePort("22").Handle(
		func(p int) { fmt.Println("port", p) },
		nil,
	)
	fmt.Println(errors.Is(err, either.ErrInvalidArgument))
	// Output:
	// true
}

func ExampleFromPair() {
	b, err := strconv.ParseBool("yes")
	e := either.FromPair(b, err)
	fmt.Println(e.IsSuccess())
	fmt.Println(e)
	// Output:
	// false
	// Error(strconv.ParseBool: parsing "yes": invalid syntax)
}
