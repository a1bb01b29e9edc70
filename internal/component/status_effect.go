package component

// SlowEffect scales an enemy's speed until Until (sim time).
type SlowEffect struct {
	SlowFactor float64 // 1 means unaffected
	Until      float64
}
