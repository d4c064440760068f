package event

const (
	ShotFired        EventType = "ShotFired"        // Выстрел занял слот пула
	SpawnDropped     EventType = "SpawnDropped"     // Пул переполнен, спавн отброшен
	EntranceFinished EventType = "EntranceFinished" // Игрок закончил вылет
	EnemySpawned     EventType = "EnemySpawned"
	AssetsReady      EventType = "AssetsReady" // Все спрайты загружены
)

// Имена пулов в данных ShotFired и SpawnDropped.
const (
	WeaponPrimary = "primary"
	WeaponSplit   = "split"
	PoolEnemy     = "enemy"
)

// SpawnData — данные для ShotFired, SpawnDropped и EnemySpawned
type SpawnData struct {
	Pool  string
	Slot  int // индекс слота, -1 если спавн отброшен
	X, Y  float64
	Frame uint64
}
