package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/annel0/mmo-guard/internal/config"
	"github.com/annel0/mmo-guard/internal/entity"
	"github.com/annel0/mmo-guard/internal/flags"
	"github.com/annel0/mmo-guard/internal/guard"
	"github.com/annel0/mmo-guard/internal/logging"
	"github.com/annel0/mmo-guard/internal/metadata"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config (or GUARD_CONFIG)")
		command    = flag.String("cmd", "types", "Command: types, classify, flags, reasons, npc, tag, serve-metrics")
		typeName   = flag.String("type", "", "Entity type key (e.g. creeper, minecraft:oak_boat)")
		entityUUID = flag.String("uuid", "", "Entity UUID for metadata lookup")
		tamed      = flag.Bool("tamed", false, "Classify as tamed")
		saddled    = flag.Bool("saddled", false, "Classify as saddled")
		reason     = flag.String("reason", "", "Spawn reason for classify (e.g. COMMAND)")
		flagName   = flag.String("flag", "", "Show a single explosion flag")
		tagKey     = flag.String("key", "NPC", "Metadata key for tag command")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	if err := setupLogging(cfg); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()
	defer logging.GetLoggerManager().CloseAll()

	switch *command {
	case "types":
		showTypes()

	case "classify":
		if err := classify(*typeName, *tamed, *saddled, *reason); err != nil {
			log.Fatalf("❌ Classify failed: %v", err)
		}

	case "flags":
		if err := showFlags(*flagName); err != nil {
			log.Fatalf("❌ Flags failed: %v", err)
		}

	case "reasons":
		showReasons()

	case "npc":
		if err := checkNPC(cfg, *typeName, *entityUUID); err != nil {
			log.Fatalf("❌ NPC check failed: %v", err)
		}

	case "tag":
		if err := tagEntity(cfg, *entityUUID, *tagKey); err != nil {
			log.Fatalf("❌ Tag failed: %v", err)
		}

	case "serve-metrics":
		if err := serveMetrics(cfg); err != nil {
			log.Fatalf("❌ Metrics server failed: %v", err)
		}

	default:
		fmt.Printf("❌ Unknown command: %s\n", *command)
		fmt.Println("Available commands: types, classify, flags, reasons, npc, tag, serve-metrics")
		os.Exit(1)
	}
}

// setupLogging настраивает глобальный логгер по конфигурации
func setupLogging(cfg *config.Config) error {
	logging.SetLogDir(cfg.Logging.GetDir())
	if err := logging.InitDefaultLogger("entity-cli"); err != nil {
		return err
	}

	consoleLevel, fileLevel, err := cfg.Logging.Levels()
	if err != nil {
		return err
	}
	logging.SetDefaultLevels(consoleLevel, fileLevel)
	logging.GetLoggerManager().SetDefaultLevels(consoleLevel, fileLevel)
	logging.Debug("Логирование настроено: console=%s file=%s dir=%s", consoleLevel, fileLevel, logging.LogDir())
	return nil
}

// showTypes выводит все виды сущностей с основными категориями
func showTypes() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "TYPE\tCATEGORIES\tEXPLOSION FLAG")
	for _, et := range entity.EntityTypes() {
		e := &entity.Entity{Type: et}
		fmt.Fprintf(w, "%s\t%s\t%s\n", et, strings.Join(categories(e), ","), entity.ExplosionFlag(e))
	}
}

// categories возвращает список категорий, в которые попадает сущность
func categories(e *entity.Entity) []string {
	var result []string
	add := func(ok bool, name string) {
		if ok {
			result = append(result, name)
		}
	}

	add(entity.IsHostile(e), "hostile")
	add(entity.IsNonHostile(e), "non-hostile")
	add(entity.IsAmbient(e), "ambient")
	add(entity.IsNPC(e, nil), "npc")
	add(entity.IsBoat(e.Type), "boat")
	add(entity.IsMinecart(e.Type), "minecart")
	add(entity.IsTNTBased(e), "tnt")
	add(entity.IsFireball(e.Type), "fireball")
	add(entity.IsPotionArrow(e), "potion-arrow")
	add(entity.IsAoECloud(e.Type), "aoe-cloud")
	add(entity.IsConsideredBuildingIfUsed(e), "building")
	add(e.Is(entity.CapProjectile), "projectile")

	if len(result) == 0 {
		return []string{"-"}
	}
	return result
}

// classify выводит полный отчёт по одному виду
func classify(typeName string, tamed, saddled bool, reasonName string) error {
	et, ok := entity.ParseEntityType(typeName)
	if !ok {
		return fmt.Errorf("unknown entity type %q", typeName)
	}

	g, err := guard.New(nil, guard.WithLogger(logging.DefaultLogger()))
	if err != nil {
		return err
	}

	e := entity.NewEntity(1, et)
	e.Tamed = tamed
	e.Saddled = saddled

	r := g.Classify(e, nil)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "type\t%s\n", r.Type)
	fmt.Fprintf(w, "tamed\t%v\n", r.Tamed)
	fmt.Fprintf(w, "tnt-based\t%v\n", r.TNTBased)
	fmt.Fprintf(w, "fireball\t%v\n", r.Fireball)
	fmt.Fprintf(w, "ridden-on-use\t%v\n", r.RiddenOnUse)
	fmt.Fprintf(w, "vehicle\t%v\n", r.Vehicle)
	fmt.Fprintf(w, "boat\t%v\n", r.Boat)
	fmt.Fprintf(w, "minecart\t%v\n", r.Minecart)
	fmt.Fprintf(w, "hostile\t%v\n", r.Hostile)
	fmt.Fprintf(w, "non-hostile\t%v\n", r.NonHostile)
	fmt.Fprintf(w, "ambient\t%v\n", r.Ambient)
	fmt.Fprintf(w, "npc\t%v\n", r.NPC)
	fmt.Fprintf(w, "non-player-creature\t%v\n", r.NonPlayerCreature)
	fmt.Fprintf(w, "building-if-used\t%v\n", r.BuildingIfUsed)
	fmt.Fprintf(w, "potion-arrow\t%v\n", r.PotionArrow)
	fmt.Fprintf(w, "aoe-cloud\t%v\n", r.AoECloud)
	fmt.Fprintf(w, "explosion-flag\t%s\n", r.ExplosionFlag)

	if reasonName != "" {
		reason, ok := entity.ParseSpawnReason(reasonName)
		if !ok {
			return fmt.Errorf("unknown spawn reason %q", reasonName)
		}
		fmt.Fprintf(w, "plugin-spawning(%s)\t%v\n", reason, entity.IsPluginSpawning(reason))
	}
	return nil
}

// showFlags выводит флаги взрывов и их значения по умолчанию
func showFlags(name string) error {
	list := flags.ExplosionFlags()
	if name != "" {
		f, ok := flags.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown explosion flag %q", name)
		}
		list = []flags.Flag{f}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "FLAG\tDEFAULT")
	for _, f := range list {
		fmt.Fprintf(w, "%s\t%v\n", f, f.Default)
	}
	return nil
}

// showReasons выводит причины появления и признак "создано плагином"
func showReasons() {
	for _, r := range entity.SpawnReasons() {
		marker := ""
		if entity.IsPluginSpawning(r) {
			marker = " (plugin)"
		}
		fmt.Printf("%s%s\n", r, marker)
	}
}

// newLoader подключается к Redis с метками по конфигурации
func newLoader(ctx context.Context, cfg *config.Config) (*metadata.RedisLoader, error) {
	return metadata.NewRedisLoader(ctx, metadata.RedisConfig{
		Addr:      cfg.Metadata.GetRedisAddr(),
		Password:  cfg.Metadata.RedisPassword,
		DB:        cfg.Metadata.RedisDB,
		KeyPrefix: cfg.Metadata.KeyPrefix,
		Timeout:   cfg.Metadata.GetTimeout(),
	})
}

// tagEntity навешивает метку на сущность в Redis
func tagEntity(cfg *config.Config, rawUUID, key string) error {
	id, err := uuid.Parse(rawUUID)
	if err != nil {
		return fmt.Errorf("invalid uuid %q: %w", rawUUID, err)
	}

	ctx := context.Background()
	loader, err := newLoader(ctx, cfg)
	if err != nil {
		return err
	}
	defer loader.Close()

	if err := loader.Tag(ctx, id, key); err != nil {
		return err
	}
	fmt.Printf("✅ %s tagged with %s\n", id, key)
	return nil
}

// checkNPC проверяет сущность на NPC с метками из Redis
func checkNPC(cfg *config.Config, typeName, rawUUID string) error {
	et, ok := entity.ParseEntityType(typeName)
	if !ok {
		return fmt.Errorf("unknown entity type %q", typeName)
	}
	id, err := uuid.Parse(rawUUID)
	if err != nil {
		return fmt.Errorf("invalid uuid %q: %w", rawUUID, err)
	}

	e := &entity.Entity{UniqueID: id, Type: et}

	var source entity.MetadataSource
	if cfg.Metadata.GetRedisAddr() != "" {
		ctx := context.Background()
		loader, err := newLoader(ctx, cfg)
		if err != nil {
			return err
		}
		defer loader.Close()

		tags, err := loader.Load(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("🏷  tags: %s\n", strings.Join(tags.Keys(id), ", "))
		source = tags
	} else {
		logging.Warn("Redis не настроен, проверка NPC только по виду сущности")
	}

	fmt.Printf("npc(%s %s) = %v\n", et, id, entity.IsNPC(e, source))
	return nil
}

// serveMetrics прогоняет все виды через Guard и отдаёт /metrics
func serveMetrics(cfg *config.Config) error {
	reg := prometheus.NewRegistry()
	g, err := guard.New(reg)
	if err != nil {
		return err
	}

	for _, et := range entity.EntityTypes() {
		g.Classify(entity.NewEntity(uint64(et), et), nil)
	}

	addr := fmt.Sprintf(":%d", cfg.Metrics.GetPort())
	logging.Info("📈 Prometheus /metrics доступен по адресу %s", addr)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return http.ListenAndServe(addr, mux)
}
