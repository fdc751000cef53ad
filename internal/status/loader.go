// Package status loads project-status files. Readers are deliberately
// tolerant: unknown status or severity strings are passed through for the
// metrics layer to handle conservatively, and absent dates stay empty. A
// single odd record never fails a load.
package status

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/podium/internal/domain"
	podiumerrors "github.com/felixgeelhaar/podium/internal/errors"
)

// File is the parsed content of one project-status file.
type File struct {
	Program     string           `yaml:"program"`
	Projects    []domain.Project `yaml:"projects"`
	Risks       []domain.Risk    `yaml:"risks"`
	Fingerprint string           `yaml:"-"`
}

// Repository defines the interface for loading status files.
// This interface enables dependency injection and makes testing easier.
type Repository interface {
	// Load reads a status file, dispatching on the file extension
	Load(path string) (*File, error)
}

// FileRepository implements Repository for file-based storage
type FileRepository struct{}

// NewFileRepository creates a new file-based status repository
func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

// Load reads a status file. YAML (.yaml/.yml) and XML (.xml) are supported.
func (r *FileRepository) Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, podiumerrors.NewStatusNotFoundError(path)
		}
		return nil, podiumerrors.Wrap(podiumerrors.ErrCodeFileReadFailed, fmt.Sprintf("read status file: %s", path), err)
	}

	var file *File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		file, err = parseYAML(data)
		if err != nil {
			return nil, podiumerrors.NewStatusUnmarshalError(path, "YAML", err)
		}
	case ".xml":
		file, err = parseXML(data)
		if err != nil {
			return nil, podiumerrors.NewStatusUnmarshalError(path, "XML", err)
		}
	default:
		return nil, podiumerrors.New(podiumerrors.ErrCodeStatusInvalid,
			fmt.Sprintf("unsupported status file format: %s (supported: .yaml, .yml, .xml)", path))
	}

	file.Fingerprint = Fingerprint(data)
	normalize(file)
	return file, nil
}

func parseYAML(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal status: %w", err)
	}
	return &file, nil
}

// xmlStatus mirrors the XML layout of exported status files. Kept separate
// from the domain types so they stay free of wire tags they do not need.
type xmlStatus struct {
	XMLName  xml.Name     `xml:"status"`
	Program  string       `xml:"program,attr"`
	Projects []xmlProject `xml:"project"`
	Risks    []xmlRisk    `xml:"risk"`
}

type xmlProject struct {
	ID         string         `xml:"id,attr"`
	Name       string         `xml:"name,attr"`
	Milestones []xmlMilestone `xml:"milestone"`
}

type xmlMilestone struct {
	Name       string `xml:"name,attr"`
	Status     string `xml:"status,attr"`
	TargetDate string `xml:"target-date,attr"`
}

type xmlRisk struct {
	ID       string `xml:"id,attr"`
	Title    string `xml:"title,attr"`
	Severity string `xml:"severity,attr"`
	Status   string `xml:"status,attr"`
}

func parseXML(data []byte) (*File, error) {
	var doc xmlStatus
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal status: %w", err)
	}

	file := &File{Program: doc.Program}
	for _, p := range doc.Projects {
		project := domain.Project{ID: p.ID, Name: p.Name}
		for _, m := range p.Milestones {
			project.Milestones = append(project.Milestones, domain.Milestone{
				Name:       m.Name,
				Status:     domain.MilestoneStatus(m.Status),
				TargetDate: m.TargetDate,
			})
		}
		file.Projects = append(file.Projects, project)
	}
	for _, r := range doc.Risks {
		file.Risks = append(file.Risks, domain.Risk{
			ID:       r.ID,
			Title:    r.Title,
			Severity: domain.Severity(r.Severity),
			Status:   domain.RiskStatus(r.Status),
		})
	}
	return file, nil
}

// normalize lowercases the enumerated fields so exporters that write
// NOT_STARTED or Critical still match the canonical values. Values that
// remain unrecognized after normalization are left as-is for the metrics
// layer to default. Projects without an explicit ID get one derived from
// their name.
func normalize(file *File) {
	for pi := range file.Projects {
		p := &file.Projects[pi]
		if p.ID == "" {
			if id, err := domain.SlugifyProjectID(p.Name); err == nil {
				p.ID = id.String()
			}
		}
		for mi := range p.Milestones {
			m := &p.Milestones[mi]
			m.Status = domain.MilestoneStatus(strings.ToLower(string(m.Status)))
		}
	}
	for ri := range file.Risks {
		r := &file.Risks[ri]
		r.Severity = domain.Severity(strings.ToLower(string(r.Severity)))
		r.Status = domain.RiskStatus(strings.ToLower(string(r.Status)))
	}
}

// Default instance for package-level functions
var defaultRepository = NewFileRepository()

// Load reads a status file using the default repository.
func Load(path string) (*File, error) {
	return defaultRepository.Load(path)
}

// Compile-time verification that FileRepository implements Repository
var _ Repository = (*FileRepository)(nil)
