package component

// Outcome is the terminal state of a run.
type Outcome int

const (
	Playing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// RunState holds the economy and progress of one run. Gold and base health
// change only through Spend, Credit and Damage, and nothing changes once the
// outcome is terminal.
type RunState struct {
	Gold           int
	BaseHealth     int
	MaxBaseHealth  int
	WaveIndex      int // -1 before the first wave
	WaveInProgress bool
	Outcome        Outcome
	SelectedTower  string
	TimeMultiplier float64
	CriticalRaised bool
}

func NewRunState(gold, baseHealth int, selected string) *RunState {
	return &RunState{
		Gold:           gold,
		BaseHealth:     baseHealth,
		MaxBaseHealth:  baseHealth,
		WaveIndex:      -1,
		SelectedTower:  selected,
		TimeMultiplier: 1,
	}
}

func (r *RunState) Ended() bool { return r.Outcome != Playing }

// Spend deducts cost if affordable.
func (r *RunState) Spend(cost int) bool {
	if r.Ended() || cost < 0 || r.Gold < cost {
		return false
	}
	r.Gold -= cost
	return true
}

func (r *RunState) Credit(amount int) {
	if r.Ended() || amount <= 0 {
		return
	}
	r.Gold += amount
}

// Damage lowers base health, clamped at zero, and flips the run to Lost when
// it hits zero. It reports whether this call ended the run.
func (r *RunState) Damage(amount int) bool {
	if r.Ended() || amount <= 0 {
		return false
	}
	r.BaseHealth -= amount
	if r.BaseHealth <= 0 {
		r.BaseHealth = 0
		r.Outcome = Lost
		return true
	}
	return false
}

// Finish moves a running game into a terminal outcome. It reports false if
// the run had already ended.
func (r *RunState) Finish(o Outcome) bool {
	if r.Ended() || o == Playing {
		return false
	}
	r.Outcome = o
	return true
}
