package zx0_test

import (
	"errors"
	"fmt"

	"github.com/woozymasta/zx0"
)

func ExampleDecompress() {
	src := []byte{0x1f, 0x41, 0x42, 0x52, 0x41, 0x20, 0xf6, 0xab, 0x43, 0x44, 0xf5, 0xf2, 0x55, 0x58}
	out, err := zx0.Decompress(src, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))
	// Output: ABRA ABRACADABRA
}

func ExampleDecompress_maxOutputSize() {
	src := []byte{0x1f, 0x41, 0x42, 0x52, 0x41, 0x20, 0xf6, 0xab, 0x43, 0x44, 0xf5, 0xf2, 0x55, 0x58}
	opts := zx0.DefaultOptions()
	opts.MaxOutputSize = 9
	out, err := zx0.Decompress(src, opts)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))
	// Output: ABRA ABRA
}

func ExampleDecompress_truncated() {
	_, err := zx0.Decompress([]byte{0x1f, 0x41}, nil)
	fmt.Println(errors.Is(err, zx0.ErrTruncatedInput))
	// Output: true
}
