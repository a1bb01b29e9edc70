package event

const (
	WaveStarted        EventType = "WaveStarted"
	WaveCleared        EventType = "WaveCleared"
	EnemySpawned       EventType = "EnemySpawned"
	EnemyLeaked        EventType = "EnemyLeaked"
	EnemyKilled        EventType = "EnemyKilled"
	BossSpawned        EventType = "BossSpawned"
	BossAbilityCast    EventType = "BossAbilityCast"
	VortexDisruption   EventType = "VortexDisruption"
	TowerDisabled      EventType = "TowerDisabled"
	BossDefeated       EventType = "BossDefeated"
	TowerPlaced        EventType = "TowerPlaced"
	TowerRejected      EventType = "TowerRejected"
	ProjectileImpact   EventType = "ProjectileImpact"
	BaseHealthCritical EventType = "BaseHealthCritical"
	GameOver           EventType = "GameOver"
	RunRestarted       EventType = "RunRestarted"
)
