package loop

// Game tuning constants. All tunable collision and progression parameters
// are centralized here; difficulty-dependent values live in the config
// package presets.

// Scoring
const (
	ScoreEnemyKill = 10
	ScoreBossKill  = 500
)

// Health
const (
	InitialHealth     = 100
	LeakDamage        = 5  // Flat penalty when an enemy slips past, any difficulty
	BossHitDamage     = 5  // Boss health lost per bullet hit
	BossContactDamage = 20 // Flat damage when the boss reaches the ship
)

// Collision ranges, in world units (Euclidean 3D distance).
const (
	BulletEnemyRange = 2.0
	BulletBossRange  = 5.0
	EnemyPlayerRange = 3.0
	BossPlayerRange  = 5.0
)

// Progression
const (
	// BossScoreStep spaces the boss spawn thresholds: one boss per
	// crossed multiple of this score.
	BossScoreStep = 500
)

// Effects
const (
	killBurstParticles = 12
	bossBurstParticles = 36
)
