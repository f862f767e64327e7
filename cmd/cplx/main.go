package main

import (
	"os"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/lvcomplex/cmd/cplx/cmd"
)

func main() {
	err := cmd.Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
