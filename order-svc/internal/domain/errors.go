package domain

import "errors"

var ErrItemNotFound = errors.New("menu item not found")
