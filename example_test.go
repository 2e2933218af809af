// File: nest/example_test.go
package nest_test

import (
	"fmt"

	"nest"
)

func ExampleNest_Get() {
	doc := []any{
		map[string]any{"name": "Peter", "age": 45},
		map[string]any{
			"name":    "John",
			"friends": []any{"Betty", map[string]any{"name": "Lucy"}},
		},
	}

	n := nest.MustNew(doc)

	v, _ := n.Get("1.friends.0")
	fmt.Println(v)

	v, _ = n.Get("1.friends.1.name")
	fmt.Println(v)

	// Output:
	// Betty
	// Lucy
}

func ExampleNest_Set_append() {
	doc := map[string]any{"numbers": []any{1, 2, 3, 4}}

	n := nest.MustNew(doc)
	_ = n.Set("numbers.+", 10)

	v, _ := n.Get("numbers")
	fmt.Println(v)

	// Output:
	// [1 2 3 4 10]
}

func ExampleNest_IterPattern() {
	doc := []any{
		map[string]any{"name": "Peter"},
		map[string]any{"name": "John"},
	}

	n := nest.MustNew(doc)
	for m, err := range n.IterPattern("*.name") {
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s = %v\n", m.Path, m.Value)
	}

	// Output:
	// 0.name = Peter
	// 1.name = John
}

func ExampleNest_FindPattern() {
	doc := []any{
		map[string]any{"name": "Peter", "age": 45},
		map[string]any{"name": "John", "age": 13},
	}

	n := nest.MustNew(doc)
	m, found, _ := n.FindPattern("*.age", func(v any) bool {
		age, ok := v.(int)
		return ok && age < 18
	})
	fmt.Println(found, m.Path, m.Value)

	// Output:
	// true 1.age 13
}
