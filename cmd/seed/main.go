package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/storeops-dev/roster-manager/backend/internal/config"
	"github.com/storeops-dev/roster-manager/backend/internal/repository"
	"github.com/storeops-dev/roster-manager/backend/internal/seed"
	"github.com/storeops-dev/roster-manager/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var scheduleVersionID int64

	flag.IntVar(&op, "op", 0, "operation to run (1: random users, 2: random shift templates, 3: schedule version ladder, 4: random submissions, 5: roster CSV import)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Int64Var(&scheduleVersionID, "schedule-version-id", 0, "schedule version to attach random submissions to")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open only builds the pool; ping to make sure the database is there.
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation given")
	case 1:
		if n <= 0 {
			slog.Error("user count must be positive")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain)
				if err != nil {
					slog.Error("failed to generate random user", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateUser(user); err != nil {
					slog.Error("failed to insert user", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("users inserted", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("template count must be positive")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				st := utils.GenerateRandomShiftTemplate()
				if err := repo.CreateShiftTemplate(st); err != nil {
					slog.Error("failed to insert shift template", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("shift templates inserted", slog.Int("count", n-cnt))
		}
	case 3:
		if n <= 0 {
			slog.Error("version count must be positive")
		} else {
			seed.SeedVersionLadder(repo, n)
		}
	case 4:
		if scheduleVersionID <= 0 {
			slog.Error("a valid schedule version id is required")
			return
		}

		sv, err := repo.GetScheduleVersionByID(scheduleVersionID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				slog.Error("schedule version does not exist", slog.Int64("schedule_version_id", scheduleVersionID))
			default:
				slog.Error("failed to fetch schedule version", slog.String("error", err.Error()))
			}
			return
		}

		st, err := repo.GetShiftTemplate(sv.ShiftTemplateID)
		if err != nil {
			slog.Error("failed to fetch shift template", slog.String("error", err.Error()))
			return
		}

		users, err := repo.GetAllUsers()
		if err != nil {
			slog.Error("failed to fetch users", slog.String("error", err.Error()))
			return
		}

		cnt := 0
		for _, user := range users {
			as := utils.GenerateRandomSubmission(sv, st, user)
			if err := repo.InsertAvailabilitySubmission(as); err != nil {
				slog.Error("failed to insert availability submission", slog.String("error", err.Error()))
				continue
			}

			cnt++
		}

		slog.Info("availability submissions inserted", slog.Int("count", cnt))
	case 5:
		seed.SeedRosterData(repo)
	default:
		slog.Error("unknown operation")
	}
}
