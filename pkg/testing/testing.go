package testing

import (
	"os"
	"path"
	"path/filepath"
	"runtime"
)

// Importing this package for side effects moves the test process to the
// project root, so relative paths like .env resolve the same as for the
// server binary:
//
//	import (
//	  _ "campuscctv.xyz/inventory-service/pkg/testing"
//	)
//
// Log files written before a test swaps in a nop or capture logger go to a
// temp dir unless CCTV_LOG_DIR is already set.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	root := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(root); err != nil {
		panic(err)
	}

	if dir, found := os.LookupEnv("CCTV_LOG_DIR"); !found || dir == "" {
		_ = os.Setenv("CCTV_LOG_DIR", filepath.Join(os.TempDir(), "cctv-inventory-test-logs"))
	}
}
