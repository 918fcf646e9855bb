// Package settings manages the single school configuration row.
package settings

import (
	"time"

	"github.com/google/uuid"

	settingsrepo "github.com/tahfiz/listening/internal/database/settings"
	"github.com/tahfiz/listening/internal/entities"
)

// DefaultPledgeText is presented to students who have not yet accepted the
// pledge when no custom text has been stored.
const DefaultPledgeText = `بسم الله الرحمن الرحيم

الميثاق الطلابي

أتعهد بما يلي:
١. الالتزام بحفظ كتاب الله تعالى وتعلم تجويده
٢. احترام المعلمين والإدارة والزملاء
٣. المحافظة على أوقات الحضور والانصراف
٤. العناية بنظافة المصحف والمكان
٥. عدم الغياب إلا لعذر شرعي
٦. المحافظة على الهدوء والسكينة داخل الحلقات
٧. الالتزام بالآداب الإسلامية في التعامل

أسأل الله التوفيق والسداد
`

// Service reads and updates the school settings row. Each write records who
// made the change and when.
type Service struct {
	settings *settingsrepo.Repository
}

// NewService creates a new settings service.
func NewService(settings *settingsrepo.Repository) *Service {
	return &Service{settings: settings}
}

// Get returns the current settings, creating the row with defaults on first
// access.
func (s *Service) Get() (*entities.SchoolSettings, error) {
	return s.settings.Get()
}

// GetSchoolName returns the configured school name.
func (s *Service) GetSchoolName() (string, error) {
	settings, err := s.settings.Get()
	if err != nil {
		return "", err
	}
	return settings.SchoolNameArabic, nil
}

// GetLogoPath returns the stored logo path, or nil when none is set.
func (s *Service) GetLogoPath() (*string, error) {
	settings, err := s.settings.Get()
	if err != nil {
		return nil, err
	}
	return settings.SchoolLogoPath, nil
}

// GetPledgeText returns the stored pledge text, falling back to the default
// wording when none has been configured.
func (s *Service) GetPledgeText() (string, error) {
	settings, err := s.settings.Get()
	if err != nil {
		return "", err
	}
	if settings.PledgeText == nil || *settings.PledgeText == "" {
		return DefaultPledgeText, nil
	}
	return *settings.PledgeText, nil
}

// UpdateSchoolName replaces the school name.
func (s *Service) UpdateSchoolName(schoolName string, modifiedByUserID uuid.UUID) error {
	return s.update(modifiedByUserID, func(settings *entities.SchoolSettings) {
		settings.SchoolNameArabic = schoolName
	})
}

// UpdateLogoPath replaces the logo path. A nil path clears it.
func (s *Service) UpdateLogoPath(logoPath *string, modifiedByUserID uuid.UUID) error {
	return s.update(modifiedByUserID, func(settings *entities.SchoolSettings) {
		settings.SchoolLogoPath = logoPath
	})
}

// UpdatePledgeText replaces the pledge text shown to students.
func (s *Service) UpdatePledgeText(pledgeText string, modifiedByUserID uuid.UUID) error {
	return s.update(modifiedByUserID, func(settings *entities.SchoolSettings) {
		settings.PledgeText = &pledgeText
	})
}

// update performs a read-modify-write against the settings row.
func (s *Service) update(modifiedByUserID uuid.UUID, apply func(*entities.SchoolSettings)) error {
	settings, err := s.settings.Get()
	if err != nil {
		return err
	}
	apply(settings)
	now := time.Now()
	settings.ModifiedAt = &now
	settings.ModifiedByUserID = &modifiedByUserID
	return s.settings.Update(settings)
}
