package scheduler

import (
	"errors"
	"fmt"
)

var (
	ErrJobRunning    = errors.New("rotina já em andamento")
	ErrBackupRunning = fmt.Errorf("backup de exportação: %w", ErrJobRunning)
)
