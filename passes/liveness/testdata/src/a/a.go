package a

func f(n int) int { // want `LivenessAnalysis: f live-in \{\}`
	x := n
	return x
}

func g() int { // want `LivenessAnalysis: g live-in \{x\}`
	var x int
	return x
}

func h(b bool) int { // want `LivenessAnalysis: h live-in \{y\}`
	var y int
	if b {
		y = 1
	}
	return y
}
