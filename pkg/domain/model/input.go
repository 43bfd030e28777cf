package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/pacforge/pacforge/pkg/domain/types"
)

type ProvisionRepoInput struct {
	Config *Config

	Name        string
	Namespace   string // target namespace, defaults to Name
	LocalDir    string // clone destination, defaults to /tmp/<Name>
	OnOrg       bool
	WebhookURL  string // already merged: explicit webhook URL wins over smee
	InternalURL string
	CreatePAC   bool
}

func (x *ProvisionRepoInput) Validate() error {
	if x.Config == nil {
		return goerr.Wrap(types.ErrInvalidOption, "config is nil")
	}
	if err := x.Config.Validate(); err != nil {
		return err
	}
	if x.Name == "" {
		return goerr.Wrap(types.ErrInvalidOption, "repository name is empty")
	}
	if x.CreatePAC && x.InternalURL == "" {
		return goerr.Wrap(types.ErrInvalidOption, "internal forge URL is required for cluster registration")
	}
	return nil
}

type ProvisionPRInput struct {
	Config *Config

	Name         string
	TargetBranch string
	Title        string // auto-generated when empty
	PipelineFile string
	OpenBrowser  bool
}

func (x *ProvisionPRInput) Validate() error {
	if x.Config == nil {
		return goerr.Wrap(types.ErrInvalidOption, "config is nil")
	}
	if err := x.Config.Validate(); err != nil {
		return err
	}
	if x.Name == "" {
		return goerr.Wrap(types.ErrInvalidOption, "repository name is empty")
	}
	if x.TargetBranch == "" {
		return goerr.Wrap(types.ErrInvalidOption, "target branch is empty")
	}
	if x.PipelineFile == "" {
		return goerr.Wrap(types.ErrInvalidOption, "pipeline file path is empty")
	}
	return nil
}

type ProvisionCheckoutInput struct {
	Config *Config

	Repo        string // "name" or "owner/name"
	Destination string
}

func (x *ProvisionCheckoutInput) Validate() error {
	if x.Config == nil {
		return goerr.Wrap(types.ErrInvalidOption, "config is nil")
	}
	if err := x.Config.Validate(); err != nil {
		return err
	}
	if x.Repo == "" {
		return goerr.Wrap(types.ErrInvalidOption, "repository name is empty")
	}
	if x.Destination == "" {
		return goerr.Wrap(types.ErrInvalidOption, "destination is empty")
	}
	return nil
}
