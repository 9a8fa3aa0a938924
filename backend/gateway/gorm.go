package gateway

import (
	"errors"

	"project/backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore backs the gateway with a relational database through GORM.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) CreateUser(user *models.User) error {
	if err := s.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *GormStore) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetUserByPhone(phone string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("phone_number = ?", phone).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) UpdateUser(user *models.User) error {
	return s.DB.Save(user).Error
}

func (s *GormStore) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) GetProgress(userID uint) (*models.UserProgress, error) {
	var p models.UserProgress
	if err := s.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) UpsertProgress(p *models.UserProgress) error {
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"current_chapter", "completed_chapters", "last_accessed", "updated_at"}),
	}).Create(p).Error
}

func (s *GormStore) UpsertTestResult(r *models.TestResult) error {
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "chapter_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "passed", "answers", "completed_at", "updated_at"}),
	}).Create(r).Error
}

func (s *GormStore) GetTestResult(userID uint, chapterNumber int) (*models.TestResult, error) {
	var r models.TestResult
	err := s.DB.Where("user_id = ? AND chapter_number = ?", userID, chapterNumber).First(&r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

func (s *GormStore) ListTestResults(userID uint) ([]models.TestResult, error) {
	var results []models.TestResult
	err := s.DB.Where("user_id = ?", userID).Order("chapter_number").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (s *GormStore) CreateCertificate(c *models.Certificate) error {
	// DoNothing + RowsAffected keeps the uniqueness decision inside postgres.
	res := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDuplicate
	}
	return nil
}

func (s *GormStore) GetCertificate(userID uint) (*models.Certificate, error) {
	var c models.Certificate
	if err := s.DB.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *GormStore) GetCertificateBySlug(slug string) (*models.Certificate, error) {
	var c models.Certificate
	if err := s.DB.Where("slug = ?", slug).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *GormStore) SaveOTP(code *models.OTPCode) error {
	return s.DB.Create(code).Error
}

func (s *GormStore) LatestOTP(contact string) (*models.OTPCode, error) {
	var code models.OTPCode
	err := s.DB.Where("contact = ? AND consumed = false", contact).
		Order("created_at DESC").First(&code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &code, nil
}

func (s *GormStore) ConsumeOTP(id uint) error {
	return s.DB.Model(&models.OTPCode{}).Where("id = ?", id).
		Update("consumed", true).Error
}
