// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package repair

import "errors"

// ErrImage is returned when the input texture cannot be interpreted as an
// RGBA pixel buffer.
var ErrImage = errors.New("repair: texture could not be interpreted as RGBA")
