package main

import (
	"fmt"

	"github.com/yuya-isaka/chibialgo/bsearch"
)

func main() {
	seq := []int64{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}

	fmt.Print("Array: ")
	for _, v := range seq {
		fmt.Printf("%d ", v)
	}
	fmt.Println()

	if bsearch.IsSorted(seq) {
		fmt.Println("Is sorted: yes")
	} else {
		fmt.Println("Is sorted: no")
	}

	for _, target := range []int64{7, 19, 1, 10, 20, -5} {
		if index, ok := bsearch.Search(seq, target); ok {
			fmt.Printf("Found %d at index %d\n", target, index)
		} else {
			fmt.Printf("%d not found\n", target)
		}
	}

	// int16インデックスでのオーバーフローの対比
	wide := make([]int64, 30000)
	for i := range wide {
		wide[i] = int64(i) * 2
	}

	index, ok := bsearch.Search16(wide, wide[29999])
	fmt.Printf("Search16: found=%v index=%d\n", ok, index)

	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Printf("SearchNaive16: panic: %v\n", r)
			}
		}()
		index, ok := bsearch.SearchNaive16(wide, wide[29999])
		fmt.Printf("SearchNaive16: found=%v index=%d\n", ok, index)
	}()
}
