package solana

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/AlexZinkM/bulk-checker/internal/client"
	"github.com/AlexZinkM/bulk-checker/internal/crypto"
	"github.com/AlexZinkM/bulk-checker/internal/logx"
	"github.com/AlexZinkM/bulk-checker/internal/model"
	"github.com/AlexZinkM/bulk-checker/internal/sink"

	"go.uber.org/zap"
)

var (
	// ErrInputNotFound is returned when the input file does not exist.
	// No output files are created in that case.
	ErrInputNotFound = errors.New("input file not found")
	// ErrSinkWrite is returned when an output file cannot be written mid-run
	ErrSinkWrite = errors.New("failed to write results")
)

// CheckOptions configures a single check run
type CheckOptions struct {
	InputPath  string
	FundedPath string
	EmptyPath  string

	Probe    BalanceProbe
	Throttle *client.Throttle // nil uses client.DefaultInterval
	Progress *sink.Progress   // nil discards progress output
	QRDir    string           // when set, a QR PNG is written for every funded address
	OpenSink sink.Opener      // nil creates regular files
}

// CheckWallets reads secret keys from InputPath one per line, looks up each
// balance and sorts the wallets into the funded and empty files.
//
// Lines that do not parse as a key are skipped without being counted. A
// failed lookup is counted as empty and logged into the empty file with
// its reason. Lookups are sequential and paced by the throttle.
//
// The returned report carries the counters reached so far, including when
// the run stops early because of an error or ctx cancellation.
func CheckWallets(ctx context.Context, opt CheckOptions) (*model.CheckReport, error) {
	report := &model.CheckReport{
		InputPath:  opt.InputPath,
		FundedPath: opt.FundedPath,
		EmptyPath:  opt.EmptyPath,
	}

	if opt.Probe == nil {
		return report, fmt.Errorf("balance probe is required")
	}
	if opt.FundedPath == "" || opt.EmptyPath == "" || opt.FundedPath == opt.EmptyPath {
		return report, fmt.Errorf("funded and empty output paths must be set and differ")
	}

	in, err := os.Open(opt.InputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return report, fmt.Errorf("%w: %s", ErrInputNotFound, opt.InputPath)
		}
		return report, fmt.Errorf("failed to open input %s: %w", opt.InputPath, err)
	}
	defer in.Close()

	funded, err := sink.Open(opt.FundedPath, opt.OpenSink)
	if err != nil {
		return report, err
	}
	empty, err := sink.Open(opt.EmptyPath, opt.OpenSink)
	if err != nil {
		if derr := funded.Discard(); derr != nil {
			logx.S().Warnw("failed to discard output", "path", opt.FundedPath, "err", derr)
		}
		return report, err
	}

	r := newRun(opt, &report.Counters, funded, empty)

	r.log.Infow("check started", "input", opt.InputPath, "funded_file", opt.FundedPath, "empty_file", opt.EmptyPath)
	r.progress.Header()

	streamErr := r.stream(ctx, in)

	summary := sink.Summary(report.Counters, opt.FundedPath, opt.EmptyPath)
	r.progress.Summary(summary)
	closeErr := errors.Join(funded.Close(summary), empty.Close(summary))

	r.log.Infow("check finished",
		"checked", report.Counters.Checked,
		"funded", report.Counters.Funded,
		"empty", report.Counters.Empty,
	)

	if streamErr != nil {
		r.log.Errorw("check aborted", "err", streamErr)
		return report, streamErr
	}
	if closeErr != nil {
		return report, fmt.Errorf("%w: %w", ErrSinkWrite, closeErr)
	}
	return report, nil
}

// run is the state owned by one CheckWallets call
type run struct {
	opt      CheckOptions
	counters *model.RunCounters
	funded   *sink.Sink
	empty    *sink.Sink
	throttle *client.Throttle
	progress *sink.Progress
	log      *zap.SugaredLogger
}

func newRun(opt CheckOptions, counters *model.RunCounters, funded, empty *sink.Sink) *run {
	throttle := opt.Throttle
	if throttle == nil {
		throttle = client.NewThrottle(client.DefaultInterval)
	}
	progress := opt.Progress
	if progress == nil {
		progress = sink.NewProgress(io.Discard, false)
	}
	return &run{
		opt:      opt,
		counters: counters,
		funded:   funded,
		empty:    empty,
		throttle: throttle,
		progress: progress,
		log:      logx.With("checker"),
	}
}

// maxLineLen bounds one input line. Longer lines cannot hold a key and are
// skipped like any other malformed line.
const maxLineLen = 64 * 1024

func (r *run) stream(ctx context.Context, in io.Reader) error {
	br := bufio.NewReader(in)
	for {
		line, readErr := nextLine(br)
		if kp, ok := crypto.ParseLine(line); ok {
			if err := r.check(ctx, kp); err != nil {
				return err
			}
		}

		if errors.Is(readErr, io.EOF) {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("failed to read input %s: %w", r.opt.InputPath, readErr)
		}
	}
}

func (r *run) check(ctx context.Context, kp crypto.Keypair) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("check interrupted after %d wallets: %w", r.counters.Checked, err)
	}

	r.counters.Checked++
	rec := r.classify(ctx, kp)
	if err := r.write(rec); err != nil {
		return fmt.Errorf("%w: %w", ErrSinkWrite, err)
	}

	if err := r.throttle.Wait(ctx); err != nil {
		return fmt.Errorf("check interrupted after %d wallets: %w", r.counters.Checked, err)
	}
	return nil
}

// nextLine returns the next line including its terminator. A line longer
// than maxLineLen is consumed and returned empty.
func nextLine(br *bufio.Reader) (string, error) {
	var (
		line     []byte
		oversize bool
	)
	for {
		chunk, err := br.ReadSlice('\n')
		if !oversize {
			if len(line)+len(chunk) > maxLineLen {
				line, oversize = nil, true
			} else {
				line = append(line, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return string(line), err
	}
}

// classify probes the balance of kp. A panic while doing so is turned into
// a failed reading so it only affects this wallet.
func (r *run) classify(ctx context.Context, kp crypto.Keypair) (rec model.ClassificationRecord) {
	secret := kp.String()
	address := kp.PublicKey()

	defer func() {
		if p := recover(); p != nil {
			r.log.Errorw("balance check panicked", "address", address.String(), "panic", p)
			rec = sink.NewRecord(secret, model.BalanceReading{
				Address: address,
				Err:     fmt.Errorf("unexpected failure: %v", p),
			})
		}
	}()

	reading := model.BalanceReading{Address: address}
	reading.Lamports, reading.Err = r.opt.Probe.GetBalance(ctx, address)
	if reading.Err != nil {
		r.log.Warnw("balance lookup failed", "address", address.String(), "err", reading.Err)
	}
	return sink.NewRecord(secret, reading)
}

func (r *run) write(rec model.ClassificationRecord) error {
	line := sink.FormatRecord(rec)

	switch {
	case rec.Category == model.CategoryFunded:
		r.counters.Funded++
		r.progress.Found(line)
		r.log.Infow("funded wallet found", "address", rec.Address, "balance", rec.Balance)
		r.exportQR(rec.Address)
		return r.funded.Write(line)
	case rec.Failed:
		r.counters.Empty++
		r.progress.Failed(line)
		return r.empty.Write(line)
	default:
		r.counters.Empty++
		r.progress.Zero(line)
		return r.empty.Write(line)
	}
}

func (r *run) exportQR(address string) {
	if r.opt.QRDir == "" {
		return
	}
	path, err := writeAddressQR(r.opt.QRDir, address)
	if err != nil {
		r.log.Warnw("QR export failed", "address", address, "err", err)
		return
	}
	r.log.Debugw("QR exported", "address", address, "path", path)
}
