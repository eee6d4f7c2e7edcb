package main

// Command: generate_domain.go
//
// Description:
// Scaffolds a new capture domain under domain/<name>: a create-only
// repository, a service with a validation hook, a POST controller and a DTO,
// matching the shape of the waitlist and vendor domains.
//
// Usage:
//   make generate-domain
//   # Then follow the prompt to enter your domain name.

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const domainDir = "domain/"

func GenerateDomain() {
	fmt.Println("Enter the name of your domain please: ")
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()

	domainName := strings.TrimSpace(scanner.Text())

	if domainName == "" {
		fmt.Println("unable to create domain, invalid input")
		return
	}

	domainPath := filepath.Join(domainDir, domainName)

	if _, err := os.Stat(domainPath); !os.IsNotExist(err) {
		fmt.Println("Error: Domain already exists. Ignoring creation.")
		return
	}

	if err := os.MkdirAll(domainPath, os.ModePerm); err != nil {
		fmt.Println("Error creating domain: ", err)
		return
	}

	files := map[string]string{
		"repository.go": repoTemplate(domainName),
		"service.go":    serviceTemplate(domainName),
		"controller.go": controllerTemplate(domainName),
		"dto.go":        dtoTemplate(domainName),
	}

	for filename, content := range files {
		path := filepath.Join(domainPath, filename)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			fmt.Println("Error creating file:", err)
		}
	}

	title := titleCase(domainName)
	fmt.Println("Domain", domainName, "created successfully!")
	fmt.Println("  ===> Next steps:")
	fmt.Println("   1) Create the database model in internal/models/")
	fmt.Printf("      type %s struct {\n", title)
	fmt.Println("          gorm.Model")
	fmt.Println("          // Add your fields here")
	fmt.Println("      }")
	fmt.Println("   2) Register the model in internal/models/registry.go ModelRegistry")
	fmt.Println("   3) Add a SQL migration under migrations/ for the new table")
	fmt.Println("   4) Register the domain controller in domain/main.go's SetupCoreDomain function:")
	fmt.Printf("      appConfig.RouterService.MountController(%s.New%sController(appConfig.DB, appConfig.Logger))\n", domainName, title)
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func repoTemplate(domain string) string {
	title := titleCase(domain)
	return fmt.Sprintf(`package %[1]s

import (
	"context"

	"github.com/evervow/leads-api/internal/models"
	apperrors "github.com/evervow/leads-api/pkg/errors"
	"gorm.io/gorm"
)

type %[2]sRepository interface {
	// Create persists a new %[1]s row. Capture tables are append-only;
	// duplicates are allowed.
	Create(ctx context.Context, row *models.%[2]s) (*models.%[2]s, error)
}

type %[1]sRepository struct {
	db *gorm.DB
}

func New%[2]sRepository(db *gorm.DB) %[2]sRepository {
	return &%[1]sRepository{db: db}
}

func (r *%[1]sRepository) Create(ctx context.Context, row *models.%[2]s) (*models.%[2]s, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, apperrors.NewDatabaseError("DB error", err)
	}
	return row, nil
}
`, domain, title)
}

func serviceTemplate(domain string) string {
	title := titleCase(domain)
	return fmt.Sprintf(`package %[1]s

import (
	"context"

	"github.com/evervow/leads-api/internal/log"
	"github.com/evervow/leads-api/internal/models"
	apperrors "github.com/evervow/leads-api/pkg/errors"
)

type %[2]sService interface {
	// Submit validates, normalizes and stores one %[1]s submission.
	Submit(ctx context.Context, req *SubmitRequest) error
}

type %[1]sService struct {
	logger     *log.Logger
	repository %[2]sRepository
}

func New%[2]sService(logger *log.Logger, repository %[2]sRepository) %[2]sService {
	return &%[1]sService{logger: logger, repository: repository}
}

func (s *%[1]sService) Submit(ctx context.Context, req *SubmitRequest) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		return apperrors.NewInvalidRequestError("Invalid data", nil)
	}

	// Normalize the payload here (trim optionals, lowercase emails, ...).
	row := &models.%[2]s{}

	if _, err := s.repository.Create(ctx, row); err != nil {
		logger.Error("Failed to store %[1]s submission", "error", err)
		return err
	}

	return nil
}
`, domain, title)
}

func controllerTemplate(domain string) string {
	title := titleCase(domain)
	return fmt.Sprintf(`package %[1]s

import (
	"github.com/evervow/leads-api/config/router"
	"github.com/evervow/leads-api/internal/log"
	apperrors "github.com/evervow/leads-api/pkg/errors"
	"gorm.io/gorm"
)

func New%[2]sController(
	db *gorm.DB,
	logger *log.Logger,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"%[2]sController",
		"v1",
		"/%[1]s",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := New%[2]sRepository(db)
			service := New%[2]sService(logger, repository)

			rs.AddPostHandler(c, nil, "", submitHandler(service))
		},
	)
}

func submitHandler(service %[2]sService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req SubmitRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind %[1]s request", "error", err)
			return router.BadRequestResult("Bad request", nil)
		}

		if err := service.Submit(ctx.Request.Context(), &req); err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(nil, "%[2]s submission accepted")
	}
}
`, domain, title)
}

func dtoTemplate(domain string) string {
	return fmt.Sprintf(`package %[1]s

// SubmitRequest is the %[1]s form payload. Keep validation out of binding
// tags; normalization belongs in the service layer.
type SubmitRequest struct {
	// Add your fields here
}
`, domain)
}
