// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command stringify renders the sequence 1, 2, 3 as text and prints it.
package main

import (
	"fmt"

	"code.hybscloud.com/kind"
)

func main() {
	out := kind.ToSeq(kind.StringifySeq(kind.Seq[int]{1, 2, 3}))
	fmt.Printf("%q\n", []string(out))
}
