package gateway

import (
	"sort"
	"sync"
	"time"

	"project/backend/models"
)

// MemStore is the in-memory gateway adapter. It backs demo mode (no database
// configured) and the test suites, with the same semantics as the GORM
// adapter, including certificate uniqueness.
type MemStore struct {
	mu     sync.Mutex
	nextID uint

	users        map[uint]models.User
	progress     map[uint]models.UserProgress // keyed by user ID
	results      map[uint]map[int]models.TestResult
	certificates map[uint]models.Certificate // keyed by user ID
	otps         []models.OTPCode
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:        make(map[uint]models.User),
		progress:     make(map[uint]models.UserProgress),
		results:      make(map[uint]map[int]models.TestResult),
		certificates: make(map[uint]models.Certificate),
	}
}

func (s *MemStore) nextIDLocked() uint {
	s.nextID++
	return s.nextID
}

func (s *MemStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.PhoneNumber == user.PhoneNumber {
			return ErrDuplicate
		}
	}
	user.ID = s.nextIDLocked()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.users[user.ID] = *user
	return nil
}

func (s *MemStore) GetUser(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemStore) GetUserByPhone(phone string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.PhoneNumber == phone {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) UpdateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return ErrNotFound
	}
	user.UpdatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}

func (s *MemStore) ListUsers() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *MemStore) GetProgress(userID uint) (*models.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.progress[userID]
	if !ok {
		return nil, ErrNotFound
	}
	p.CompletedChapters = append(models.ChapterSet{}, p.CompletedChapters...)
	return &p, nil
}

func (s *MemStore) UpsertProgress(p *models.UserProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.progress[p.UserID]
	if ok {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	} else {
		p.ID = s.nextIDLocked()
		p.CreatedAt = time.Now()
	}
	p.UpdatedAt = time.Now()
	stored := *p
	stored.CompletedChapters = append(models.ChapterSet{}, p.CompletedChapters...)
	s.progress[p.UserID] = stored
	return nil
}

func (s *MemStore) UpsertTestResult(r *models.TestResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byChapter, ok := s.results[r.UserID]
	if !ok {
		byChapter = make(map[int]models.TestResult)
		s.results[r.UserID] = byChapter
	}
	if existing, ok := byChapter[r.ChapterNumber]; ok {
		r.ID = existing.ID
		r.CreatedAt = existing.CreatedAt
	} else {
		r.ID = s.nextIDLocked()
		r.CreatedAt = time.Now()
	}
	r.UpdatedAt = time.Now()
	byChapter[r.ChapterNumber] = *r
	return nil
}

func (s *MemStore) GetTestResult(userID uint, chapterNumber int) (*models.TestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.results[userID][chapterNumber]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (s *MemStore) ListTestResults(userID uint) ([]models.TestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	results := make([]models.TestResult, 0, len(s.results[userID]))
	for _, r := range s.results[userID] {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].ChapterNumber < results[j].ChapterNumber
	})
	return results, nil
}

func (s *MemStore) CreateCertificate(c *models.Certificate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.certificates[c.UserID]; ok {
		return ErrDuplicate
	}
	c.ID = s.nextIDLocked()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	s.certificates[c.UserID] = *c
	return nil
}

func (s *MemStore) GetCertificate(userID uint) (*models.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.certificates[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemStore) GetCertificateBySlug(slug string) (*models.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.certificates {
		if c.Slug == slug {
			c := c
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) SaveOTP(code *models.OTPCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	code.ID = s.nextIDLocked()
	code.CreatedAt = time.Now()
	code.UpdatedAt = code.CreatedAt
	s.otps = append(s.otps, *code)
	return nil
}

func (s *MemStore) LatestOTP(contact string) (*models.OTPCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.otps) - 1; i >= 0; i-- {
		if s.otps[i].Contact == contact && !s.otps[i].Consumed {
			code := s.otps[i]
			return &code, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) ConsumeOTP(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.otps {
		if s.otps[i].ID == id {
			s.otps[i].Consumed = true
			return nil
		}
	}
	return ErrNotFound
}
