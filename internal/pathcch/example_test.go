package pathcch_test

import (
	"fmt"

	"github.com/jpl-au/pathcch/internal/pathcch"
)

func ExampleEnsureTrailingSeparatorEx() {
	b, _ := pathcch.FromString(`C:\Users`, 20)

	r, tail, err := pathcch.EnsureTrailingSeparatorEx(b)
	fmt.Println(b, r, tail.Offset, tail.Remaining, err)
	// Output: C:\Users\ changed 9 11 <nil>
}

func ExampleStripExtendedPrefix() {
	b, _ := pathcch.FromString(`\\?\UNC\server\share`, 30)

	r, err := pathcch.StripExtendedPrefix(b)
	fmt.Println(b, r, err)
	// Output: \\server\share changed <nil>
}
