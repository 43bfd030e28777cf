package infra

import (
	"time"

	"github.com/pkg/browser"

	"github.com/pacforge/pacforge/pkg/domain/interfaces"
	"github.com/pacforge/pacforge/pkg/infra/exec"
	"github.com/pacforge/pacforge/pkg/infra/gitx"
)

type Clients struct {
	forge       interfaces.ForgeClient
	git         interfaces.CommandRunner
	kubectl     interfaces.CommandRunner
	openBrowser func(url string) error
	workBranch  func(path, branch string) error
	now         func() time.Time
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		git:         exec.New("git"),
		kubectl:     exec.New("kubectl"),
		openBrowser: browser.OpenURL,
		workBranch:  gitx.CreateWorkBranch,
		now:         time.Now,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Forge() interfaces.ForgeClient {
	return x.forge
}
func (x *Clients) Git() interfaces.CommandRunner {
	return x.git
}
func (x *Clients) Kubectl() interfaces.CommandRunner {
	return x.kubectl
}
func (x *Clients) OpenBrowser(url string) error {
	return x.openBrowser(url)
}
func (x *Clients) WorkBranch(path, branch string) error {
	return x.workBranch(path, branch)
}
func (x *Clients) Now() time.Time {
	return x.now()
}

func WithForge(client interfaces.ForgeClient) Option {
	return func(x *Clients) {
		x.forge = client
	}
}

func WithGit(runner interfaces.CommandRunner) Option {
	return func(x *Clients) {
		x.git = runner
	}
}

func WithKubectl(runner interfaces.CommandRunner) Option {
	return func(x *Clients) {
		x.kubectl = runner
	}
}

func WithBrowser(open func(url string) error) Option {
	return func(x *Clients) {
		x.openBrowser = open
	}
}

func WithWorkBranch(create func(path, branch string) error) Option {
	return func(x *Clients) {
		x.workBranch = create
	}
}

func WithNow(now func() time.Time) Option {
	return func(x *Clients) {
		x.now = now
	}
}
