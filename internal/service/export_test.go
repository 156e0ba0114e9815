package service

import "time"

func (tb *TokenBucket) SetClock(now func() time.Time) { tb.now = now }
