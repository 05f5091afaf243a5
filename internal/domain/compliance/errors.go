package compliance

import "errors"

var ErrSlabNotFound = errors.New("tax slab not found")
