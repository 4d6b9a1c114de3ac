package visitparam_test

import (
	"fmt"

	"github.com/arloliu/visitparam"
	"github.com/arloliu/visitparam/column"
)

func ExampleExtractInt() {
	col := column.FromStrings(`{"id":7,"name":"a"}`, `{"name":"b"}`)

	ids, err := visitparam.ExtractInt(col, "id")
	if err != nil {
		panic(err)
	}
	fmt.Println(ids)
	// Output: [7 0]
}

func ExampleEngine_Extract() {
	engine, err := visitparam.New()
	if err != nil {
		panic(err)
	}

	col := column.FromStrings(`{"name":"café"}`, `{"name":"a\"b"}`, `{}`)
	res, err := engine.Extract(visitparam.KindString, visitparam.Column(col), visitparam.Const("name"))
	if err != nil {
		panic(err)
	}
	for i := 0; i < res.Len(); i++ {
		fmt.Printf("%q\n", res.Format(i))
	}
	// Output:
	// "café"
	// "a\"b"
	// ""
}
