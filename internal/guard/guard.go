package guard

import (
	"github.com/annel0/mmo-guard/internal/entity"
	"github.com/annel0/mmo-guard/internal/flags"
	"github.com/annel0/mmo-guard/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

// Guard - точка входа конвейера защиты регионов в классификатор сущностей.
// Результаты совпадают с функциями пакета entity; Guard лишь считает их в
// Prometheus и пишет отладочный лог. Своего состояния классификации не
// хранит и безопасен для параллельного использования.
type Guard struct {
	logger *logging.Logger

	explosionFlags *prometheus.CounterVec
	shooterHops    prometheus.Histogram
	npcChecks      *prometheus.CounterVec
}

// Option настраивает Guard
type Option func(*Guard)

// WithLogger задаёт логгер вместо логгера компонента "guard"
func WithLogger(logger *logging.Logger) Option {
	return func(g *Guard) {
		g.logger = logger
	}
}

// New создаёт Guard и регистрирует метрики в reg.
// Если reg == nil, метрики создаются, но не регистрируются.
// Без WithLogger используется логгер компонента "guard", который создаёт
// свой файл в каталоге логов.
func New(reg prometheus.Registerer, opts ...Option) (*Guard, error) {
	g := &Guard{
		explosionFlags: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mmo_guard",
			Name:      "explosion_flag_total",
			Help:      "Сколько раз взрыв был отнесён к каждому флагу.",
		}, []string{"flag"}),
		shooterHops: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mmo_guard",
			Name:      "shooter_hops",
			Help:      "Длина цепочки снарядов до конечного стрелка.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8},
		}),
		npcChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mmo_guard",
			Name:      "npc_checks_total",
			Help:      "Проверки на NPC с разбивкой по результату.",
		}, []string{"result"}),
	}

	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = logging.GetGuardLogger()
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{g.explosionFlags, g.shooterHops, g.npcChecks} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// ExplosionFlag возвращает флаг, регулирующий взрыв от сущности
func (g *Guard) ExplosionFlag(e *entity.Entity) flags.Flag {
	flag := entity.ExplosionFlag(e)
	g.explosionFlags.WithLabelValues(flag.Name).Inc()
	g.logger.Trace("Взрыв от %s -> флаг %s", e, flag)
	return flag
}

// Shooter возвращает конечного стрелка для сущности
func (g *Guard) Shooter(e *entity.Entity) *entity.Entity {
	shooter, hops := entity.ResolveShooter(e)
	g.shooterHops.Observe(float64(hops))
	if hops > 0 {
		g.logger.Debug("Снаряд %s выпущен %s (звеньев: %d)", e, shooter, hops)
	}
	return shooter
}

// IsNPC проверяет сущность на NPC с учётом меток metadata
func (g *Guard) IsNPC(e *entity.Entity, metadata entity.MetadataSource) bool {
	npc := entity.IsNPC(e, metadata)
	result := "false"
	if npc {
		result = "true"
	}
	g.npcChecks.WithLabelValues(result).Inc()
	return npc
}

// Report - сводка классификации одной сущности
type Report struct {
	Type              entity.EntityType
	Tamed             bool
	TNTBased          bool
	Fireball          bool
	RiddenOnUse       bool
	Vehicle           bool
	Boat              bool
	Minecart          bool
	Hostile           bool
	NonHostile        bool
	Ambient           bool
	NPC               bool
	NonPlayerCreature bool
	BuildingIfUsed    bool
	PotionArrow       bool
	AoECloud          bool
	ExplosionFlag     flags.Flag
	Shooter           *entity.Entity
}

// Classify собирает все предикаты для сущности в один отчёт
func (g *Guard) Classify(e *entity.Entity, metadata entity.MetadataSource) Report {
	var t entity.EntityType
	if e != nil {
		t = e.Type
	}

	return Report{
		Type:              t,
		Tamed:             entity.IsTamed(e),
		TNTBased:          entity.IsTNTBased(e),
		Fireball:          entity.IsFireball(t),
		RiddenOnUse:       entity.IsRiddenOnUse(e),
		Vehicle:           entity.IsVehicle(t),
		Boat:              entity.IsBoat(t),
		Minecart:          entity.IsMinecart(t),
		Hostile:           entity.IsHostile(e),
		NonHostile:        entity.IsNonHostile(e),
		Ambient:           entity.IsAmbient(e),
		NPC:               g.IsNPC(e, metadata),
		NonPlayerCreature: entity.IsNonPlayerCreature(e),
		BuildingIfUsed:    entity.IsConsideredBuildingIfUsed(e),
		PotionArrow:       entity.IsPotionArrow(e),
		AoECloud:          entity.IsAoECloud(t),
		ExplosionFlag:     g.ExplosionFlag(e),
		Shooter:           g.Shooter(e),
	}
}
