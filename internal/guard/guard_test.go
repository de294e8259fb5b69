package guard

import (
	"io"
	"os"
	"sync"
	"testing"

	"github.com/annel0/mmo-guard/internal/entity"
	"github.com/annel0/mmo-guard/internal/flags"
	"github.com/annel0/mmo-guard/internal/logging"
	"github.com/annel0/mmo-guard/internal/metadata"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGuard(t *testing.T) (*Guard, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	g, err := New(reg, WithLogger(logging.NewConsoleLogger("guard-test", io.Discard)))
	require.NoError(t, err)
	return g, reg
}

func TestGuard_ExplosionFlagMetrics(t *testing.T) {
	g, _ := newTestGuard(t)

	assert.Equal(t, flags.CreeperExplosion, g.ExplosionFlag(entity.NewEntity(1, entity.EntityTypeCreeper)))
	assert.Equal(t, flags.TNT, g.ExplosionFlag(entity.NewEntity(2, entity.EntityTypeTNT)))
	assert.Equal(t, flags.TNT, g.ExplosionFlag(entity.NewEntity(3, entity.EntityTypeTNTMinecart)))
	assert.Equal(t, flags.OtherExplosion, g.ExplosionFlag(nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(g.explosionFlags.WithLabelValues(flags.CreeperExplosion.Name)))
	assert.Equal(t, 2.0, testutil.ToFloat64(g.explosionFlags.WithLabelValues(flags.TNT.Name)))
	assert.Equal(t, 1.0, testutil.ToFloat64(g.explosionFlags.WithLabelValues(flags.OtherExplosion.Name)))
}

func TestGuard_Shooter(t *testing.T) {
	g, _ := newTestGuard(t)

	skeleton := entity.NewEntity(1, entity.EntityTypeSkeleton)
	arrow := entity.NewEntity(2, entity.EntityTypeArrow)
	arrow.Shooter = skeleton

	assert.Same(t, skeleton, g.Shooter(arrow))
	assert.Same(t, skeleton, g.Shooter(skeleton))
	assert.Equal(t, 1, testutil.CollectAndCount(g.shooterHops), "Гистограмма должна быть одной серией")
}

func TestGuard_IsNPC(t *testing.T) {
	g, _ := newTestGuard(t)
	tags := metadata.NewTags()

	zombie := entity.NewEntity(1, entity.EntityTypeZombie)
	assert.False(t, g.IsNPC(zombie, tags))

	tags.Add(zombie.UniqueID, entity.NPCMetadataKey)
	assert.True(t, g.IsNPC(zombie, tags))
	assert.True(t, g.IsNPC(entity.NewEntity(2, entity.EntityTypeVillager), nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(g.npcChecks.WithLabelValues("false")))
	assert.Equal(t, 2.0, testutil.ToFloat64(g.npcChecks.WithLabelValues("true")))
}

func TestGuard_ClassifyMatchesPureFunctions(t *testing.T) {
	g, _ := newTestGuard(t)

	for _, et := range entity.EntityTypes() {
		e := entity.NewEntity(1, et)
		report := g.Classify(e, nil)

		assert.Equal(t, et, report.Type)
		assert.Equal(t, entity.IsHostile(e), report.Hostile, "Hostile для %s", et)
		assert.Equal(t, entity.IsNonHostile(e), report.NonHostile, "NonHostile для %s", et)
		assert.Equal(t, entity.IsVehicle(et), report.Vehicle, "Vehicle для %s", et)
		assert.Equal(t, entity.IsConsideredBuildingIfUsed(e), report.BuildingIfUsed, "BuildingIfUsed для %s", et)
		assert.Equal(t, entity.ExplosionFlag(e), report.ExplosionFlag, "ExplosionFlag для %s", et)
		assert.Same(t, e, report.Shooter, "У снаряда без источника стрелок - он сам")
	}

	nilReport := g.Classify(nil, nil)
	assert.Equal(t, entity.EntityTypeUnknown, nilReport.Type)
	assert.Equal(t, flags.OtherExplosion, nilReport.ExplosionFlag)
	assert.Nil(t, nilReport.Shooter)
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	logger := logging.NewConsoleLogger("guard-test", io.Discard)

	_, err := New(reg, WithLogger(logger))
	require.NoError(t, err)

	_, err = New(reg, WithLogger(logger))
	assert.Error(t, err, "Повторная регистрация тех же метрик должна давать ошибку")

	g, err := New(nil, WithLogger(logger))
	require.NoError(t, err, "Без реестра метрики не регистрируются")
	assert.NotNil(t, g)
}

func TestGuard_ConcurrentClassifyWithLevelChanges(t *testing.T) {
	logger := logging.NewConsoleLogger("guard-test", io.Discard)
	g, err := New(prometheus.NewRegistry(), WithLogger(logger))
	require.NoError(t, err)

	skeleton := entity.NewEntity(1, entity.EntityTypeSkeleton)
	arrow := entity.NewEntity(2, entity.EntityTypeArrow)
	arrow.Shooter = skeleton
	tags := metadata.NewTags()
	tags.Add(skeleton.UniqueID, entity.NPCMetadataKey)

	const workers, rounds = 8, 200

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				report := g.Classify(arrow, tags)
				assert.Same(t, skeleton, report.Shooter)
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		levels := []logging.LogLevel{logging.TRACE, logging.ERROR}
		for i := 0; i < rounds; i++ {
			logger.SetLevels(levels[i%2], levels[(i+1)%2])
		}
	}()
	wg.Wait()

	assert.Equal(t, float64(workers*rounds), testutil.ToFloat64(g.explosionFlags.WithLabelValues(flags.OtherExplosion.Name)),
		"Каждый вызов Classify должен учитываться ровно один раз")
}

func TestNew_WithLoggerCreatesNoLogFile(t *testing.T) {
	dir := t.TempDir()
	logging.SetLogDir(dir)
	defer logging.SetLogDir("logs")

	g, err := New(nil, WithLogger(logging.DefaultLogger()))
	require.NoError(t, err)
	g.Classify(entity.NewEntity(1, entity.EntityTypeCreeper), nil)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, files, "С переданным логгером Guard не должен создавать свой файл")
}
