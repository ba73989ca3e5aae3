// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package config

import "errors"

// ErrInvalidConfig wraps every configuration validation failure: an
// unrecognized enum value or an out-of-domain numeric knob.
var ErrInvalidConfig = errors.New("config: invalid configuration")
