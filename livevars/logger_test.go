package livevars

import (
	"reflect"
	"testing"
)

func TestAppendPaths(t *testing.T) {
	got := appendPaths([]string{"stderr"}, "stderr", "a.log", "a.log")
	if want := []string{"stderr", "a.log"}; !reflect.DeepEqual(got, want) {
		t.Errorf("appendPaths = %v, want %v", got, want)
	}
}
