package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/pacforge/pacforge/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

// ClusterRegistration is the triple of namespace, token secret and Repository
// custom resource that makes a Pipelines-as-Code installation watch the
// provisioned repository. The three are created together or not at all.
type ClusterRegistration struct {
	Namespace   string
	RepoName    string
	RepoURL     string
	InternalURL string
	Secret      types.TokenSecret
}

func (x *ClusterRegistration) Validate() error {
	if x.Namespace == "" {
		return goerr.Wrap(types.ErrInvalidOption, "namespace is empty")
	}
	if x.RepoName == "" {
		return goerr.Wrap(types.ErrInvalidOption, "repository name is empty")
	}
	if x.InternalURL == "" {
		return goerr.Wrap(types.ErrInvalidOption, "internal forge URL is empty")
	}
	return nil
}

type crManifest struct {
	APIVersion string     `yaml:"apiVersion"`
	Kind       string     `yaml:"kind"`
	Metadata   crMetadata `yaml:"metadata"`
	Spec       crSpec     `yaml:"spec"`
}

type crMetadata struct {
	Name      string `yaml:"name"`
	Namespace string `yaml:"namespace"`
}

type crSpec struct {
	URL         string        `yaml:"url"`
	GitProvider crGitProvider `yaml:"git_provider"`
}

type crGitProvider struct {
	Type   string      `yaml:"type"`
	URL    string      `yaml:"url"`
	Secret crSecretRef `yaml:"secret"`
}

type crSecretRef struct {
	Name string `yaml:"name"`
	Key  string `yaml:"key"`
}

// Manifest renders the Repository custom resource document applied to the
// cluster. The git provider always points at the internal forge URL because
// the in-cluster controller cannot reach the external one.
func (x *ClusterRegistration) Manifest() ([]byte, error) {
	doc := crManifest{
		APIVersion: "pipelinesascode.tekton.dev/v1alpha1",
		Kind:       "Repository",
		Metadata: crMetadata{
			Name:      x.RepoName,
			Namespace: x.Namespace,
		},
		Spec: crSpec{
			URL: x.RepoURL,
			GitProvider: crGitProvider{
				Type: "gitea",
				URL:  x.InternalURL,
				Secret: crSecretRef{
					Name: x.RepoName,
					Key:  "token",
				},
			},
		},
	}

	body, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to render Repository manifest")
	}
	return body, nil
}
