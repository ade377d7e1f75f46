package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/psisite/internal/content"
	"github.com/psisite/internal/db"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// ContentDocumentVersion 当前导出文档的版本号
const ContentDocumentVersion = 1

// ErrDocumentInvalid 表示导入文档无法解析或版本不受支持
var ErrDocumentInvalid = errors.New("invalid content document")

// ContentDocument is the YAML backup of every editable piece of the site.
// List order is the display order.
type ContentDocument struct {
	Version      int                    `yaml:"version"`
	Config       map[string]interface{} `yaml:"config"`
	Services     []OfferingRecord       `yaml:"services,omitempty"`
	Testimonials []TestimonialRecord    `yaml:"testimonials,omitempty"`
	FAQ          []FAQRecord            `yaml:"faq,omitempty"`
	Gallery      []GalleryRecord        `yaml:"gallery,omitempty"`
	Footer       *FooterInput           `yaml:"footer,omitempty"`
}

type OfferingRecord struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Icon        string `yaml:"icon,omitempty"`
	Hidden      bool   `yaml:"hidden,omitempty"`
}

type TestimonialRecord struct {
	Name    string `yaml:"name"`
	Role    string `yaml:"role,omitempty"`
	Content string `yaml:"content"`
	Rating  int    `yaml:"rating,omitempty"`
	Hidden  bool   `yaml:"hidden,omitempty"`
}

type FAQRecord struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
	Hidden   bool   `yaml:"hidden,omitempty"`
}

type GalleryRecord struct {
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	ImageURL    string `yaml:"imageUrl"`
	Hidden      bool   `yaml:"hidden,omitempty"`
}

// ImportReport counts what an import or seed wrote.
type ImportReport struct {
	ConfigEntries int
	Services      int
	Testimonials  int
	FAQ           int
	Gallery       int
	Footer        bool
}

// ExportService 负责内容的 YAML 导出、导入与初始化
type ExportService struct {
	db *gorm.DB
}

// NewExportService 构造 ExportService
func NewExportService(gdb *gorm.DB) *ExportService {
	return &ExportService{db: gdb}
}

// Export builds a document from the current store.
func (s *ExportService) Export() (*ContentDocument, error) {
	doc := &ContentDocument{Version: ContentDocumentVersion, Config: map[string]interface{}{}}

	entries, err := NewConfigService(s.db).List()
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		var value interface{}
		if err := json.Unmarshal(entry.Value, &value); err != nil {
			log.Printf("[export] skipping %s: %v", entry.Key, err)
			continue
		}
		doc.Config[entry.Key] = value
	}

	offerings, err := NewOfferingService(s.db).List(true)
	if err != nil {
		return nil, err
	}
	for _, item := range offerings {
		doc.Services = append(doc.Services, OfferingRecord{Title: item.Title, Description: item.Description, Icon: item.Icon, Hidden: !item.Visible})
	}

	testimonials, err := NewTestimonialService(s.db).List(true)
	if err != nil {
		return nil, err
	}
	for _, item := range testimonials {
		doc.Testimonials = append(doc.Testimonials, TestimonialRecord{Name: item.Name, Role: item.Role, Content: item.Content, Rating: item.Rating, Hidden: !item.Visible})
	}

	faqs, err := NewFAQService(s.db).List(true)
	if err != nil {
		return nil, err
	}
	for _, item := range faqs {
		doc.FAQ = append(doc.FAQ, FAQRecord{Question: item.Question, Answer: item.Answer, Hidden: !item.Visible})
	}

	images, err := NewGalleryService(s.db).List(true)
	if err != nil {
		return nil, err
	}
	for _, item := range images {
		doc.Gallery = append(doc.Gallery, GalleryRecord{Title: item.Title, Description: item.Description, ImageURL: item.ImageURL, Hidden: !item.Visible})
	}

	var footer db.FooterSettings
	err = s.db.Order("id ASC").First(&footer).Error
	switch {
	case err == nil:
		input := FooterInputFrom(footer)
		doc.Footer = &input
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("export footer: %w", err)
	}

	return doc, nil
}

// WriteYAML exports the store as YAML.
func (s *ExportService) WriteYAML(w io.Writer) error {
	doc, err := s.Export()
	if err != nil {
		return err
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode content document: %w", err)
	}
	return encoder.Close()
}

// ReadYAML parses a content document.
func ReadYAML(r io.Reader) (*ContentDocument, error) {
	var doc ContentDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
	}
	if doc.Version != ContentDocumentVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrDocumentInvalid, doc.Version)
	}
	return &doc, nil
}

// Import writes doc in one transaction. Config keys present in the document
// are overwritten, others are left alone; each relational list present in the
// document replaces the stored rows.
func (s *ExportService) Import(doc *ContentDocument) (ImportReport, error) {
	var report ImportReport
	if doc == nil {
		return report, ErrDocumentInvalid
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		configs := NewConfigService(tx)
		for _, key := range sortedKeys(doc.Config) {
			raw, err := json.Marshal(doc.Config[key])
			if err != nil {
				return fmt.Errorf("%w: config %s: %v", ErrDocumentInvalid, key, err)
			}
			if _, err := configs.Save(key, raw); err != nil {
				return fmt.Errorf("config %s: %w", key, err)
			}
			report.ConfigEntries++
		}

		if doc.Services != nil {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&db.ServiceOffering{}).Error; err != nil {
				return fmt.Errorf("clear services: %w", err)
			}
			svc := NewOfferingService(tx)
			for index, record := range doc.Services {
				sortValue := index
				if _, err := svc.Create(OfferingInput{Title: record.Title, Description: record.Description, Icon: record.Icon, Sort: &sortValue, Visible: visiblePtr(record.Hidden)}); err != nil {
					return fmt.Errorf("service %d: %w", index+1, err)
				}
				report.Services++
			}
		}

		if doc.Testimonials != nil {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&db.Testimonial{}).Error; err != nil {
				return fmt.Errorf("clear testimonials: %w", err)
			}
			svc := NewTestimonialService(tx)
			for index, record := range doc.Testimonials {
				sortValue := index
				if _, err := svc.Create(TestimonialInput{Name: record.Name, Role: record.Role, Content: record.Content, Rating: record.Rating, Sort: &sortValue, Visible: visiblePtr(record.Hidden)}); err != nil {
					return fmt.Errorf("testimonial %d: %w", index+1, err)
				}
				report.Testimonials++
			}
		}

		if doc.FAQ != nil {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&db.FAQItem{}).Error; err != nil {
				return fmt.Errorf("clear faq: %w", err)
			}
			svc := NewFAQService(tx)
			for index, record := range doc.FAQ {
				sortValue := index
				if _, err := svc.Create(FAQInput{Question: record.Question, Answer: record.Answer, Sort: &sortValue, Visible: visiblePtr(record.Hidden)}); err != nil {
					return fmt.Errorf("faq %d: %w", index+1, err)
				}
				report.FAQ++
			}
		}

		if doc.Gallery != nil {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&db.GalleryImage{}).Error; err != nil {
				return fmt.Errorf("clear gallery: %w", err)
			}
			svc := NewGalleryService(tx)
			for index, record := range doc.Gallery {
				sortValue := index
				if _, err := svc.Create(GalleryInput{Title: record.Title, Description: record.Description, ImageURL: record.ImageURL, SortOrder: &sortValue, Visible: visiblePtr(record.Hidden)}); err != nil {
					return fmt.Errorf("gallery %d: %w", index+1, err)
				}
				report.Gallery++
			}
		}

		if doc.Footer != nil {
			if _, err := NewFooterService(tx).Update(*doc.Footer); err != nil {
				return err
			}
			report.Footer = true
		}
		return nil
	})
	if err != nil {
		return ImportReport{}, err
	}
	return report, nil
}

// Seed writes built-in defaults for every known key that has no entry yet and
// sample rows into empty relational tables. Existing content is never touched.
func (s *ExportService) Seed() (ImportReport, error) {
	var report ImportReport

	configs := NewConfigService(s.db)
	for _, key := range content.Keys() {
		if _, err := configs.Get(key); err == nil {
			continue
		} else if !errors.Is(err, ErrConfigNotFound) {
			return report, err
		}
		value, _ := content.New(key)
		if _, err := configs.SaveValue(key, value); err != nil {
			return report, fmt.Errorf("seed %s: %w", key, err)
		}
		report.ConfigEntries++
	}

	if empty, err := s.tableEmpty(&db.ServiceOffering{}); err != nil {
		return report, err
	} else if empty {
		svc := NewOfferingService(s.db)
		for _, input := range defaultOfferings() {
			if _, err := svc.Create(input); err != nil {
				return report, err
			}
			report.Services++
		}
	}

	if empty, err := s.tableEmpty(&db.FAQItem{}); err != nil {
		return report, err
	} else if empty {
		svc := NewFAQService(s.db)
		for _, input := range defaultFAQ() {
			if _, err := svc.Create(input); err != nil {
				return report, err
			}
			report.FAQ++
		}
	}

	if empty, err := s.tableEmpty(&db.FooterSettings{}); err != nil {
		return report, err
	} else if empty {
		if _, err := NewFooterService(s.db).Update(FooterInputFrom(DefaultFooter())); err != nil {
			return report, err
		}
		report.Footer = true
	}

	return report, nil
}

func (s *ExportService) tableEmpty(model interface{}) (bool, error) {
	var count int64
	if err := s.db.Model(model).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count rows: %w", err)
	}
	return count == 0, nil
}

func defaultOfferings() []OfferingInput {
	return []OfferingInput{
		{Title: "Psicoterapia individual", Description: "Sessões semanais para adolescentes e adultos.", Icon: "heart"},
		{Title: "Atendimento online", Description: "Sessões por vídeo com o mesmo cuidado do presencial.", Icon: "video"},
		{Title: "Orientação parental", Description: "Apoio para pais e responsáveis.", Icon: "users"},
	}
}

func defaultFAQ() []FAQInput {
	return []FAQInput{
		{Question: "Como funciona a primeira sessão?", Answer: "É um encontro para nos conhecermos e entendermos sua demanda."},
		{Question: "Você atende online?", Answer: "Sim. As sessões online acontecem por videochamada."},
	}
}

func visiblePtr(hidden bool) *bool {
	visible := !hidden
	return &visible
}

func sortedKeys(values map[string]interface{}) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
