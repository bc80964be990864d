package system

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"runtime"
	"strconv"
	"strings"

	"github.com/klauspost/cpuid/v2"

	"github.com/GriffinCanCode/filemanager/internal/command"
)

// Fact names a host property reported by the os command.
type Fact string

const (
	FactEOL          Fact = "EOL"
	FactCPUs         Fact = "cpus"
	FactHomeDir      Fact = "homedir"
	FactUsername     Fact = "username"
	FactArchitecture Fact = "architecture"
)

// ErrUnknownFact is returned by ParseFact for unsupported flags.
var ErrUnknownFact = errors.New("unknown os flag")

// Facts lists the supported facts in display order.
func Facts() []Fact {
	return []Fact{FactEOL, FactCPUs, FactHomeDir, FactUsername, FactArchitecture}
}

// ParseFact accepts "--EOL" style flags as well as the bare names.
func ParseFact(arg string) (Fact, error) {
	name := strings.TrimPrefix(strings.TrimSpace(arg), "--")
	for _, f := range Facts() {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFact, arg)
}

// CPU describes one logical processor.
type CPU struct {
	Model string
	Hz    int64
}

// Host reads facts from the machine. Fields are swapped out in tests.
type Host struct {
	EOL      string
	Arch     string
	CPUs     func() []CPU
	HomeDir  func() (string, error)
	Username func() (string, error)
}

// LocalHost returns the Host backed by the running machine.
func LocalHost() Host {
	eol := "\n"
	if runtime.GOOS == "windows" {
		eol = "\r\n"
	}
	return Host{
		EOL:      eol,
		Arch:     runtime.GOARCH,
		CPUs:     localCPUs,
		HomeDir:  os.UserHomeDir,
		Username: currentUsername,
	}
}

func localCPUs() []CPU {
	model := strings.TrimSpace(cpuid.CPU.BrandName)
	if model == "" {
		model = cpuid.CPU.VendorString
	}
	if model == "" {
		model = "unknown"
	}

	cpus := make([]CPU, runtime.NumCPU())
	for i := range cpus {
		cpus[i] = CPU{Model: model, Hz: cpuid.CPU.Hz}
	}
	return cpus
}

func currentUsername() (string, error) {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username, nil
	}
	for _, key := range []string{"USER", "USERNAME", "LOGNAME"} {
		if v := os.Getenv(key); v != "" {
			return v, nil
		}
	}
	return "", errors.New("cannot determine current user")
}

// Provider implements the os command.
type Provider struct {
	out  io.Writer
	host Host
}

// NewProvider creates a system provider writing to out.
func NewProvider(out io.Writer, host Host) *Provider {
	return &Provider{out: out, host: host}
}

// Commands returns the os command.
func (p *Provider) Commands() []command.Command {
	return []command.Command{
		command.Spec[Fact]{Use: "os", Parse: ParseFact, Run: p.Print},
	}
}

// Print writes the requested fact.
func (p *Provider) Print(_ context.Context, fact Fact) error {
	text, err := p.Lookup(fact)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.out, text)
	return err
}

// Lookup renders fact as display text.
func (p *Provider) Lookup(fact Fact) (string, error) {
	switch fact {
	case FactEOL:
		return strconv.Quote(p.host.EOL), nil
	case FactCPUs:
		return formatCPUs(p.host.CPUs()), nil
	case FactHomeDir:
		return p.host.HomeDir()
	case FactUsername:
		return p.host.Username()
	case FactArchitecture:
		return p.host.Arch, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFact, string(fact))
	}
}

func formatCPUs(cpus []CPU) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Overall amount of CPUs: %d", len(cpus))
	for i, c := range cpus {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, c.Model)
		if c.Hz > 0 {
			fmt.Fprintf(&sb, " (%.2f GHz)", float64(c.Hz)/1e9)
		}
	}
	return sb.String()
}
