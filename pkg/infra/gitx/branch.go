package gitx

import (
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/m-mizutani/goerr/v2"
)

// CreateWorkBranch creates a branch at HEAD of the repository at path and
// checks it out.
func CreateWorkBranch(path, branch string) error {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return goerr.Wrap(err, "failed to open cloned repository", goerr.V("path", path))
	}

	wt, err := repo.Worktree()
	if err != nil {
		return goerr.Wrap(err, "failed to get worktree", goerr.V("path", path))
	}

	if err := wt.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branch),
		Create: true,
	}); err != nil {
		return goerr.Wrap(err, "failed to create working branch",
			goerr.V("path", path), goerr.V("branch", branch))
	}

	return nil
}
