package git

import (
	"context"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Tomas-vilte/MateLink/internal/domain/models"
	"github.com/Tomas-vilte/MateLink/internal/domain/ports"
	appErrors "github.com/Tomas-vilte/MateLink/internal/errors"
)

var _ ports.GitService = (*GitService)(nil)

// GitService es la fuente de diffs: lo staged tiene prioridad sobre el
// working tree, y si no hay nada de ninguno se consideran los archivos
// sin trackear.
type GitService struct {
}

func NewGitService() *GitService {
	return &GitService{}
}

// GetChange captura el cambio pendiente completo de una sola vez.
func (s *GitService) GetChange(ctx context.Context) (models.Change, error) {
	diff, err := s.getDiff(ctx)
	if err != nil {
		return models.Change{}, err
	}

	files, err := s.GetChangedFiles(ctx)
	if err != nil {
		return models.Change{}, err
	}

	return models.Change{
		Diff:  diff,
		Files: files,
	}, nil
}

func (s *GitService) GetChangedFiles(ctx context.Context) ([]models.GitChange, error) {
	cmd := exec.CommandContext(ctx, "git", "status", "--porcelain")
	output, err := cmd.Output()
	if err != nil {
		return nil, appErrors.ErrNotInGitRepo.WithError(err)
	}

	changes := make([]models.GitChange, 0)
	lines := strings.Split(string(output), "\n")

	for _, line := range lines {
		if len(line) > 3 {
			status := strings.TrimSpace(line[:2])
			path := strings.TrimSpace(line[3:])

			if path != "" {
				changes = append(changes, models.GitChange{
					Path:   path,
					Status: status,
				})
			}
		}
	}

	return changes, nil
}

func (s *GitService) getDiff(ctx context.Context) (string, error) {
	stagedCmd := exec.CommandContext(ctx, "git", "diff", "--cached")
	stagedOutput, err := stagedCmd.Output()
	if err != nil {
		return "", appErrors.ErrGetDiff.WithError(err)
	}

	if len(strings.TrimSpace(string(stagedOutput))) > 0 {
		return string(stagedOutput), nil
	}

	unstagedCmd := exec.CommandContext(ctx, "git", "diff")
	unstagedOutput, err := unstagedCmd.Output()
	if err != nil {
		return "", appErrors.ErrGetDiff.WithError(err)
	}

	combinedDiff := string(unstagedOutput)

	if strings.TrimSpace(combinedDiff) == "" {
		untrackedCmd := exec.CommandContext(ctx, "git", "ls-files", "--others", "--exclude-standard")
		untrackedFiles, err := untrackedCmd.Output()
		if err == nil && len(untrackedFiles) > 0 {
			for _, file := range strings.Split(string(untrackedFiles), "\n") {
				if file == "" {
					continue
				}
				fileContentCmd := exec.CommandContext(ctx, "git", "show", ":"+file)
				content, err := fileContentCmd.Output()
				if err == nil {
					combinedDiff += "\n=== Nuevo archivo " + file + " ===\n"
					combinedDiff += string(content)
				}
			}
		}
	}

	return combinedDiff, nil
}

// GetRepoInfo extrae (owner, repo) de la URL del remoto origin.
func (s *GitService) GetRepoInfo(ctx context.Context) (string, string, error) {
	cmd := exec.CommandContext(ctx, "git", "remote", "get-url", "origin")
	output, err := cmd.Output()
	if err != nil {
		return "", "", appErrors.ErrGetRepoURL.WithError(err)
	}

	url := strings.TrimSpace(string(output))
	return parseRepoURL(url)
}

func (s *GitService) CreateCommit(ctx context.Context, message string) error {
	if !s.hasStagedChanges(ctx) {
		stageCmd := exec.CommandContext(ctx, "git", "add", ".")
		if err := stageCmd.Run(); err != nil {
			return appErrors.NewAppError(appErrors.TypeGit, "error al agregar cambios al staging", err)
		}
	}

	cmd := exec.CommandContext(ctx, "git", "commit", "-m", message)
	if err := cmd.Run(); err != nil {
		return appErrors.NewAppError(appErrors.TypeGit, "error al crear el commit", err)
	}
	return nil
}

// hasStagedChanges verifica si hay cambios en el área de staging
func (s *GitService) hasStagedChanges(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, "git", "diff", "--cached", "--quiet")
	err := cmd.Run()

	// exit status 1 significa que hay cambios staged
	return err != nil && cmd.ProcessState != nil && cmd.ProcessState.ExitCode() == 1
}

var (
	sshRegex   = regexp.MustCompile(`git@([^:]+):([^/]+)/(.+)\.git$`)
	httpsRegex = regexp.MustCompile(`https://([^/]+)/([^/]+)/(.+?)(?:\.git)?$`)
)

func parseRepoURL(url string) (string, string, error) {
	var matches []string
	if sshRegex.MatchString(url) {
		matches = sshRegex.FindStringSubmatch(url)
	} else if httpsRegex.MatchString(url) {
		matches = httpsRegex.FindStringSubmatch(url)
	}

	if len(matches) >= 4 {
		repoName := strings.TrimSuffix(matches[3], ".git")
		return matches[2], repoName, nil
	}

	return "", "", appErrors.ErrGetRepoURL.WithContext("url", url)
}
