package salary

import "errors"

var ErrStructureNotFound = errors.New("salary structure not found")
