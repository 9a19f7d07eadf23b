package assemble

import "errors"

var ErrAssetsNotFound = errors.New("assets folder not found in archive")
