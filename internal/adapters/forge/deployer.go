package forge

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"
	"github.com/divaprotocol/diva-deploy/internal/config"
	"github.com/divaprotocol/diva-deploy/internal/domain"
	"github.com/divaprotocol/diva-deploy/internal/usecase"
)

// Runner executes the forge binary in dir and returns its combined output
type Runner func(ctx context.Context, dir string, args []string) ([]byte, error)

// createOutput is the JSON object `forge create --json` prints
type createOutput struct {
	Deployer        string `json:"deployer"`
	DeployedTo      string `json:"deployedTo"`
	TransactionHash string `json:"transactionHash"`
}

// DeployerAdapter deploys contracts with `forge create`
type DeployerAdapter struct {
	projectRoot string
	run         Runner
	log         *slog.Logger
}

// NewDeployerAdapter creates a deployer running forge in the project root.
// In debug mode forge output is streamed through a PTY to keep its colours.
func NewDeployerAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *DeployerAdapter {
	run := runCombined
	if cfg.Debug {
		run = runWithPTY
	}
	return NewDeployerAdapterWithRunner(cfg.ProjectRoot, run, log)
}

// NewDeployerAdapterWithRunner creates a deployer with a custom runner
func NewDeployerAdapterWithRunner(projectRoot string, run Runner, log *slog.Logger) *DeployerAdapter {
	return &DeployerAdapter{
		projectRoot: projectRoot,
		run:         run,
		log:         log.With("component", "DeployerAdapter"),
	}
}

// Command returns the forge invocation for req with the explorer key masked
func (d *DeployerAdapter) Command(req usecase.DeployRequest) []string {
	return append([]string{"forge"}, redactArgs(d.buildArgs(req))...)
}

// Deploy runs forge create for one target
func (d *DeployerAdapter) Deploy(ctx context.Context, req usecase.DeployRequest) (*domain.DeploymentResult, error) {
	args := d.buildArgs(req)

	start := time.Now()
	d.log.Debug("running forge create", "dir", d.projectRoot, "args", redactArgs(args))

	output, runErr := d.run(ctx, d.projectRoot, args)
	duration := time.Since(start)

	created, parseErr := parseCreateOutput(output)
	if parseErr != nil {
		if runErr != nil {
			d.log.Error("forge create failed", "error", runErr, "output", string(output), "duration", duration)
			return nil, fmt.Errorf("%w: forge create: %v\nOutput: %s", domain.ErrDeployFailed, runErr, strings.TrimSpace(string(output)))
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrDeployFailed, parseErr)
	}

	result := &domain.DeploymentResult{
		Target:   req.Target,
		Address:  created.DeployedTo,
		TxHash:   created.TransactionHash,
		Deployer: created.Deployer,
		Verified: req.Verify && runErr == nil,
	}

	if runErr != nil {
		// Deployed, but the verification step failed
		d.log.Warn("verification failed after deployment", "target", req.Target.Name, "address", created.DeployedTo, "error", runErr)
	}

	d.log.Debug("forge create completed", "target", req.Target.Name, "address", result.Address, "duration", duration)
	return result, nil
}

// buildArgs builds the forge create arguments. --constructor-args takes the
// rest of the line, so it goes last.
func (d *DeployerAdapter) buildArgs(req usecase.DeployRequest) []string {
	args := []string{"create", req.Target.ContractRef(), "--json"}

	if req.RPCURL != "" {
		args = append(args, "--rpc-url", req.RPCURL)
	}
	args = append(args, "--broadcast")

	if req.Account != "" {
		args = append(args, "--account", req.Account)
	}

	if req.Verify {
		args = append(args, "--verify")
		if req.EtherscanAPIKey != "" {
			args = append(args, "--etherscan-api-key", req.EtherscanAPIKey)
		}
	}

	if len(req.Target.ConstructorArgs) > 0 {
		args = append(args, "--constructor-args")
		args = append(args, req.Target.ConstructorArgs...)
	}

	return args
}

// parseCreateOutput finds the JSON result line among forge's output
func parseCreateOutput(output []byte) (*createOutput, error) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "{") {
			continue
		}

		var created createOutput
		if err := json.Unmarshal([]byte(line), &created); err != nil {
			continue
		}
		if created.DeployedTo != "" {
			return &created, nil
		}
	}

	return nil, errors.New("no deployment result in forge output")
}

// redactArgs hides the explorer key in logs and dry-run output
func redactArgs(args []string) []string {
	redacted := make([]string, len(args))
	copy(redacted, args)
	for i := 0; i < len(redacted)-1; i++ {
		if redacted[i] == "--etherscan-api-key" {
			redacted[i+1] = "***"
		}
	}
	return redacted
}

func runCombined(ctx context.Context, dir string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "forge", args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// runWithPTY streams forge output to stdout while collecting it
func runWithPTY(ctx context.Context, dir string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "forge", args...)
	cmd.Dir = dir

	ptyFile, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to start pty: %w", err)
	}
	defer func() {
		_ = ptyFile.Close()
	}()

	var buf bytes.Buffer
	// Reading a PTY whose child exited returns EIO on Linux
	_, _ = io.Copy(io.MultiWriter(os.Stdout, &buf), ptyFile)

	err = cmd.Wait()
	return buf.Bytes(), err
}

// Ensure the adapter implements the interface
var _ usecase.ContractDeployer = (*DeployerAdapter)(nil)
