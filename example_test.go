package colmem_test

import (
	"errors"
	"fmt"

	"github.com/hupe1980/colmem"
)

func Example() {
	g := colmem.NewGroup(colmem.WithExpectedEntries(4))

	prices, _ := colmem.AddColumn[float64](g, "price")
	symbols, _ := g.AddVariableWidth("symbol")

	_ = prices.Append(101.5)
	_ = symbols.AppendString("ACME")
	_ = prices.AppendNull()
	_ = symbols.AppendString("INIT")

	for i := 0; i < prices.Len(); i++ {
		sym, _ := symbols.GetString(i)
		if null, _ := prices.IsNull(i); null {
			fmt.Println(sym, "n/a")
			continue
		}
		p, _ := prices.Get(i)
		fmt.Println(sym, p)
	}

	fmt.Println(g.NullBitmaps()["price"].ToArray())
	// Output:
	// ACME 101.5
	// INIT n/a
	// [1]
}

func ExampleWithMemoryLimit() {
	g := colmem.NewGroup(colmem.WithMemoryLimit(256))
	col, _ := colmem.AddColumn[int64](g, "v")

	var err error
	for i := 0; err == nil; i++ {
		err = col.Append(int64(i))
	}

	fmt.Println(errors.Is(err, colmem.ErrMemoryLimitExceeded), col.Len())
	// Output:
	// true 1
}
