package system

import (
	"errors"
	"fmt"

	"github.com/true1853/Nykha-bot/internal/backup"
	"github.com/true1853/Nykha-bot/internal/cli"
	"github.com/true1853/Nykha-bot/internal/logger"
	"github.com/true1853/Nykha-bot/internal/storage"
)

var errBackupPostgres = errors.New("backups are only supported for SQLite; use pg_dump for PostgreSQL")

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" default:"1" help:"Snapshot the database now."`
	List    BackupListCmd    `cmd:"" help:"List snapshots, newest first."`
	Restore BackupRestoreCmd `cmd:"" help:"Replace the database with a snapshot."`
}

func newBackupManager(ctx *cli.Context) (*backup.Manager, error) {
	target := ctx.Target()
	if storage.IsPostgres(target) {
		return nil, errBackupPostgres
	}
	var opts []backup.Option
	if ctx.Config != nil && ctx.Config.BackupKeep > 0 {
		opts = append(opts, backup.WithKeep(ctx.Config.BackupKeep))
	}
	return backup.NewManager(target, opts...), nil
}

type BackupCreateCmd struct{}

func (cmd *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr, err := newBackupManager(ctx)
	if err != nil {
		return err
	}
	opCtx, cancel := ctx.Op()
	defer cancel()

	info, err := mgr.Create(opCtx)
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	ctx.Printf("Backup written to %s (%d bytes)\n", info.Path, info.Size)
	return nil
}

type BackupListCmd struct{}

func (cmd *BackupListCmd) Run(ctx *cli.Context) error {
	mgr, err := newBackupManager(ctx)
	if err != nil {
		return err
	}
	list, err := mgr.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		ctx.Printf("No backups in %s\n", mgr.Dir())
		return nil
	}
	for _, b := range list {
		ctx.Printf("%s  %8d  %s\n", b.Timestamp.Format("2006-01-02 15:04:05"), b.Size, b.Path)
	}
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" help:"Snapshot file to restore." type:"existingfile"`
}

func (cmd *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr, err := newBackupManager(ctx)
	if err != nil {
		return err
	}
	if err := ctx.Store.Close(); err != nil {
		return err
	}
	opCtx, cancel := ctx.Op()
	defer cancel()

	safety, err := mgr.Restore(opCtx, cmd.Path)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	if safety.Path != "" {
		ctx.Printf("Previous database saved to %s\n", safety.Path)
	}
	ctx.Printf("Restored %s from %s\n", ctx.Target(), cmd.Path)
	return nil
}

// preSweepBackup snapshots a SQLite database before the scheduled sweep deletes rows.
// Failures are logged and never block the sweep.
func preSweepBackup(ctx *cli.Context) {
	if ctx.Config == nil || ctx.Config.BackupKeep == 0 {
		return
	}
	mgr, err := newBackupManager(ctx)
	if err != nil {
		logger.Debug("Skipping pre-sweep backup", "reason", err)
		return
	}
	opCtx, cancel := ctx.Op()
	defer cancel()
	if _, err := mgr.Create(opCtx); err != nil {
		logger.Warn("Pre-sweep backup failed", "error", err)
	}
}
