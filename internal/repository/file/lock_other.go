//go:build !unix

package file

import "os"

// Advisory locking is only available on unix platforms.

func lockShared(*os.File) error    { return nil }
func lockExclusive(*os.File) error { return nil }
func unlock(*os.File) error        { return nil }
