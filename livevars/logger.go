package livevars

// appendPaths appends to paths the log outputs which it does not have yet.
func appendPaths(paths []string, files ...string) []string {
	for _, f := range files {
		dup := false
		for _, p := range paths {
			if p == f {
				dup = true
				break
			}
		}
		if !dup {
			paths = append(paths, f)
		}
	}
	return paths
}
