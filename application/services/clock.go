package services

import "time"

// now is swappable in tests.
var now = time.Now
