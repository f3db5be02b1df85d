// Package main provides data seeding for FJP IRMS.
//
// The command is idempotent: existing rows are skipped, never overwritten.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"irms.fjp.io/irms/ent"
	"irms.fjp.io/irms/ent/resource"
	entuser "irms.fjp.io/irms/ent/user"
	"irms.fjp.io/irms/internal/api/handlers"
	"irms.fjp.io/irms/internal/config"
	"irms.fjp.io/irms/internal/infrastructure"
	"irms.fjp.io/irms/internal/pkg/logger"
	"irms.fjp.io/irms/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(ctx); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	logger.Info("Starting data seeding...")

	if err := seedUsers(ctx, db.EntClient); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := seedResources(ctx, db.EntClient); err != nil {
		return fmt.Errorf("seed resources: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

// seedUser defines one default account.
type seedUser struct {
	ID       string
	Username string
	Email    string
	Role     string
}

func defaultUsers() []seedUser {
	return []seedUser{
		{ID: "user-admin", Username: "admin", Email: "admin@fjp.com", Role: "Admin"},
		{ID: "user-ra001", Username: "ra001", Email: "ra001@fjp.com", Role: "RA"},
		{ID: "user-mgr-hr", Username: "mgr_hr", Email: "manager@fjp.com", Role: "Manager"},
		{ID: "user-viewer01", Username: "viewer01", Email: "viewer@fjp.com", Role: "Viewer"},
	}
}

func seedUsers(ctx context.Context, client *ent.Client) error {
	hash, err := handlers.HashPassword("password")
	if err != nil {
		return fmt.Errorf("hash default password: %w", err)
	}

	for _, u := range defaultUsers() {
		_, err := client.User.Create().
			SetID(u.ID).
			SetUsername(u.Username).
			SetEmail(u.Email).
			SetPasswordHash(hash).
			SetRole(entuser.Role(u.Role)).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("User already exists, skipping", zap.String("username", u.Username))
				continue
			}
			return fmt.Errorf("create user %s: %w", u.Username, err)
		}
		logger.Info("Seeded user", zap.String("username", u.Username), zap.String("role", u.Role))
	}
	return nil
}

var (
	seedDepartments = []string{"IT", "QA", "BA", "HR", "Design", "DevOps"}
	seedSkills      = []string{
		"Java", "C#", ".NET", "SQL", "React", "Vue", "Angular", "Node.js",
		"Python", "Go", "AWS", "Azure", "GCP", "Terraform", "Kubernetes",
		"Docker", "Figma", "Sketch", "Adobe XD",
	}
	seedStatuses = []string{"Available", "Assigned", "On Hold"}
	seedRates    = []float64{400, 500, 550, 600, 700}

	seedFirstNames = []string{"Anh", "Binh", "Chi", "Dung", "Giang", "Hanh", "Khanh", "Lan", "Minh", "Nam", "Phuong", "Quang", "Thao", "Trang", "Tuan"}
	seedLastNames  = []string{"Nguyen", "Tran", "Le", "Pham", "Hoang", "Vu", "Dang", "Bui", "Do", "Ngo"}
	seedJobTitles  = []string{"Backend Engineer", "Frontend Engineer", "QA Engineer", "Business Analyst", "UI/UX Designer", "DevOps Engineer", "Data Engineer"}
)

// resourceCount is the number of demo resources created on first run.
const resourceCount = 125

func seedResources(ctx context.Context, client *ent.Client) error {
	existing, err := client.Resource.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count resources: %w", err)
	}
	if existing > 0 {
		logger.Info("Resources already present, skipping demo data", zap.Int("count", existing))
		return nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	for i := 0; i < resourceCount; i++ {
		r := randomResource(rng, now, i)
		_, err := client.Resource.Create().
			SetID(handlers.GenerateResourceID()).
			SetEmployeeCode(r.EmployeeCode).
			SetName(r.Name).
			SetEmail(r.Email).
			SetPhone(r.Phone).
			SetDepartment(resource.Department(r.Department)).
			SetJobTitle(r.JobTitle).
			SetSkills(r.Skills).
			SetExperience(r.Experience).
			SetRate(r.Rate).
			SetStatus(resource.Status(r.Status)).
			SetIdleFrom(r.IdleFrom).
			SetIdleDuration(r.IdleDuration).
			SetIsUrgent(r.IsUrgent).
			SetCreatedBy("user-admin").
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				continue
			}
			return fmt.Errorf("create demo resource: %w", err)
		}
	}

	logger.Info("Seeded demo resources", zap.Int("count", resourceCount))
	return nil
}

// demoResource carries one generated resource row.
type demoResource struct {
	EmployeeCode string
	Name         string
	Email        string
	Phone        string
	Department   string
	JobTitle     string
	Skills       []string
	Experience   string
	Rate         float64
	Status       string
	IdleFrom     time.Time
	IdleDuration int
	IsUrgent     bool
}

func randomResource(rng *rand.Rand, now time.Time, i int) demoResource {
	first := seedFirstNames[rng.Intn(len(seedFirstNames))]
	last := seedLastNames[rng.Intn(len(seedLastNames))]
	name := first + " " + last

	idleFrom := now.AddDate(0, 0, -rng.Intn(365))
	months, urgent := service.DeriveIdle(idleFrom, now)

	return demoResource{
		EmployeeCode: fmt.Sprintf("FJP%04d", 1000+i),
		Name:         name,
		Email:        fmt.Sprintf("%s.%s.%d@fjp.example.com", first, last, i),
		Phone:        fmt.Sprintf("+84 9%08d", rng.Intn(100000000)),
		Department:   seedDepartments[rng.Intn(len(seedDepartments))],
		JobTitle:     seedJobTitles[rng.Intn(len(seedJobTitles))],
		Skills:       pickSkills(rng),
		Experience:   fmt.Sprintf("%d years", 2+rng.Intn(9)),
		Rate:         seedRates[rng.Intn(len(seedRates))],
		Status:       seedStatuses[rng.Intn(len(seedStatuses))],
		IdleFrom:     idleFrom,
		IdleDuration: months,
		IsUrgent:     urgent,
	}
}

// pickSkills selects 2 to 5 distinct skills.
func pickSkills(rng *rand.Rand) []string {
	n := 2 + rng.Intn(4)
	perm := rng.Perm(len(seedSkills))
	skills := make([]string, 0, n)
	for _, idx := range perm[:n] {
		skills = append(skills, seedSkills[idx])
	}
	return skills
}
