package oracle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/timevault/internal/logging"
)

// Output markers printed by the contract interaction script.
const (
	markerUploaded = "UPLOAD_SUCCESS"
	markerGranted  = "ACCESS_GRANTED"
	markerDenied   = "ACCESS_DENIED"
)

// DefaultExecCommand runs the hardhat interaction script against a local
// node.
const DefaultExecCommand = "npx hardhat run scripts/interact.js --network localhost"

var execCommandContext = exec.CommandContext

// ExecOptions configures ExecOracle.
type ExecOptions struct {
	// Command is split on whitespace; the first field is the program.
	Command string
	// WorkDir is the directory the command runs in.
	WorkDir string
	// AddressFile holds the deployed contract address. Relative paths are
	// resolved against WorkDir.
	AddressFile string
}

// ExecOracle delegates to an external program, typically a smart-contract
// client. Inputs travel in the CMD, FILE_HASH, DURATION and CONTRACT_ADDRESS
// environment variables; the verdict is read from stdout markers.
type ExecOracle struct {
	opts ExecOptions
	log  logging.Logger
}

func NewExecOracle(opts ExecOptions, log logging.Logger) *ExecOracle {
	if opts.Command == "" {
		opts.Command = DefaultExecCommand
	}
	if opts.AddressFile == "" {
		opts.AddressFile = "contract-address.txt"
	}
	return &ExecOracle{opts: opts, log: log.With("module", "oracle.exec")}
}

func (o *ExecOracle) Register(ctx context.Context, handle string, duration time.Duration) error {
	secs := int64(duration / time.Second)
	if secs <= 0 {
		return fmt.Errorf("duration %s below one second", duration)
	}

	out, err := o.run(ctx, "upload", handle, secs)
	if err != nil {
		return err
	}
	if !strings.Contains(out, markerUploaded) {
		return errors.New("registration not confirmed by oracle")
	}
	return nil
}

func (o *ExecOracle) Check(ctx context.Context, handle string) (bool, error) {
	out, err := o.run(ctx, "check", handle, 0)
	if err != nil {
		return false, err
	}
	switch {
	case strings.Contains(out, markerGranted):
		return true, nil
	case strings.Contains(out, markerDenied):
		return false, nil
	default:
		return false, errors.New("oracle printed no verdict")
	}
}

// contractAddress is re-read on every call so a redeployed contract is
// picked up without a restart.
func (o *ExecOracle) contractAddress() (string, error) {
	path := o.opts.AddressFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(o.opts.WorkDir, path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("contract address: %w", err)
	}
	addr := strings.TrimSpace(string(b))
	if addr == "" {
		return "", fmt.Errorf("contract address file %s is empty", path)
	}
	return addr, nil
}

func (o *ExecOracle) run(ctx context.Context, command, handle string, durationSecs int64) (string, error) {
	addr, err := o.contractAddress()
	if err != nil {
		return "", err
	}

	fields := strings.Fields(o.opts.Command)
	if len(fields) == 0 {
		return "", errors.New("empty oracle command")
	}

	cmd := execCommandContext(ctx, fields[0], fields[1:]...)
	cmd.Dir = o.opts.WorkDir
	cmd.Env = append(os.Environ(),
		"CMD="+command,
		"FILE_HASH="+handle,
		"DURATION="+strconv.FormatInt(durationSecs, 10),
		"CONTRACT_ADDRESS="+addr,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	o.log.Debug(ctx, "running oracle command", "cmd", command, "handle", handle)

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("oracle command %s: %w", command, ctx.Err())
		}
		o.log.Warn(ctx, "oracle command failed", "cmd", command, "handle", handle, "stderr", stderr.String())
		return "", fmt.Errorf("oracle command %s: %w", command, err)
	}

	return stdout.String(), nil
}
