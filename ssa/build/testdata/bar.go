package main

import "fmt"

func bar(v int) {
	if v > 0 {
		fmt.Println(v)
	}
}
