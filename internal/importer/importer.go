// Package importer loads the crawler's tracking files (leads.json,
// applications.json and criteria.yml) into the store. Files come from a
// local directory or an S3 bucket. Each entity is written under its own
// savepoint so that a rejected record is logged and skipped while the rest of
// the batch commits in a single transaction.
package importer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/scholarshipops/scholarshipops/internal/dbx"
	"github.com/scholarshipops/scholarshipops/internal/logging"
	"github.com/scholarshipops/scholarshipops/internal/server/models"
	"github.com/scholarshipops/scholarshipops/internal/server/repositories/repomanager"
)

var ErrNoFiles = errors.New("no tracking files found")

type Counts struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

func (c *Counts) add(imported bool) {
	if imported {
		c.Imported++
	} else {
		c.Skipped++
	}
}

// Report summarises one import run.
type Report struct {
	Leads        Counts `json:"leads"`
	Applications Counts `json:"applications"`
	Criteria     bool   `json:"criteria"`
}

type batch struct {
	leads        []models.LeadInput
	applications []models.ApplicationInput
	criteria     *models.CriteriaInput
	found        int
}

type Importer struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func New(db *sql.DB, rm repomanager.RepositoryManager, logger logging.Logger) *Importer {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Importer{db: db, repomanager: rm, logger: logger}
}

// Run reads every tracking file from src and writes its records. A missing
// file is skipped; a malformed one aborts the run before anything is written.
func (im *Importer) Run(ctx context.Context, src Source) (*Report, error) {
	b, err := im.load(ctx, src)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	err = dbx.WithTx(ctx, im.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := im.importLeads(ctx, tx, b.leads, &report.Leads); err != nil {
			return err
		}
		if err := im.importApplications(ctx, tx, b.applications, &report.Applications); err != nil {
			return err
		}
		ok, err := im.importCriteria(ctx, tx, b.criteria)
		if err != nil {
			return err
		}
		report.Criteria = ok
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("import error: %w", err)
	}

	im.logger.Info(ctx, "import finished",
		"source", src.String(),
		"leads", report.Leads.Imported, "leadsSkipped", report.Leads.Skipped,
		"applications", report.Applications.Imported, "applicationsSkipped", report.Applications.Skipped,
		"criteria", report.Criteria)

	return report, nil
}

func (im *Importer) load(ctx context.Context, src Source) (*batch, error) {
	b := &batch{}

	read := func(name string, decode func(io.Reader) error) error {
		r, err := src.Open(ctx, name)
		if errors.Is(err, fs.ErrNotExist) {
			im.logger.Warn(ctx, "tracking file missing", "source", src.String(), "file", name)
			return nil
		}
		if err != nil {
			return fmt.Errorf("open %s: %w", name, err)
		}
		defer r.Close()

		if err := decode(r); err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		b.found++
		return nil
	}

	err := read(LeadsFile, func(r io.Reader) (err error) {
		b.leads, err = decodeLeads(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	err = read(ApplicationsFile, func(r io.Reader) (err error) {
		b.applications, err = decodeApplications(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	err = read(CriteriaFile, func(r io.Reader) (err error) {
		b.criteria, err = decodeCriteria(r)
		return err
	})
	if err != nil {
		return nil, err
	}

	if b.found == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFiles, src.String())
	}
	return b, nil
}

func (im *Importer) importLeads(ctx context.Context, tx dbx.DBTX, leads []models.LeadInput, c *Counts) error {
	repo := im.repomanager.Leads(tx)
	for i := range leads {
		in := &leads[i]
		if in.Name == nil || *in.Name == "" {
			im.logger.Warn(ctx, "lead skipped", "index", i, "error", "name is required")
			c.Skipped++
			continue
		}

		ok, err := withSavepoint(ctx, tx, func() error {
			_, err := repo.Create(ctx, in)
			return err
		}, func(err error) {
			im.logger.Warn(ctx, "lead skipped", "index", i, "name", *in.Name, "error", err.Error())
		})
		if err != nil {
			return err
		}
		c.add(ok)
	}
	return nil
}

func (im *Importer) importApplications(ctx context.Context, tx dbx.DBTX, apps []models.ApplicationInput, c *Counts) error {
	repo := im.repomanager.Applications(tx)
	for i := range apps {
		in := &apps[i]
		if in.Name == nil || *in.Name == "" {
			im.logger.Warn(ctx, "application skipped", "index", i, "error", "name is required")
			c.Skipped++
			continue
		}

		ok, err := withSavepoint(ctx, tx, func() error {
			_, err := repo.Create(ctx, in)
			return err
		}, func(err error) {
			im.logger.Warn(ctx, "application skipped", "index", i, "name", *in.Name, "error", err.Error())
		})
		if err != nil {
			return err
		}
		c.add(ok)
	}
	return nil
}

func (im *Importer) importCriteria(ctx context.Context, tx dbx.DBTX, in *models.CriteriaInput) (bool, error) {
	if in == nil || (in.CriteriaJSON == nil && in.ProfileJSON == nil) {
		return false, nil
	}

	c, err := in.Encode()
	if err != nil {
		im.logger.Warn(ctx, "criteria skipped", "error", err.Error())
		return false, nil
	}

	return withSavepoint(ctx, tx, func() error {
		_, err := im.repomanager.Criteria(tx).Upsert(ctx, c)
		return err
	}, func(err error) {
		im.logger.Warn(ctx, "criteria skipped", "error", err.Error())
	})
}

// withSavepoint runs fn inside a savepoint and reports whether it succeeded.
// When fn fails the savepoint is rolled back and onFail receives fn's error.
// The returned error is a failure of the savepoint statements themselves,
// which leaves the transaction unusable.
func withSavepoint(ctx context.Context, tx dbx.DBTX, fn func() error, onFail func(error)) (bool, error) {
	if _, err := tx.ExecContext(ctx, "SAVEPOINT import_entity"); err != nil {
		return false, err
	}

	if err := fn(); err != nil {
		if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT import_entity"); rbErr != nil {
			return false, rbErr
		}
		onFail(err)
		return false, nil
	}

	if _, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT import_entity"); err != nil {
		return false, err
	}
	return true, nil
}
