package main

func f(n int) int {
	x := 0
	y := 1
	if n > 0 {
		x = y
	}
	return x
}

func main() {
	f(1)
}
