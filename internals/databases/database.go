package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"aos_backend/internals/configs"
	clergyModel "aos_backend/internals/features/clergy/model"
	orgModel "aos_backend/internals/features/organization/model"
)

var DB *gorm.DB

// ConnectDB buka koneksi PostgreSQL. DSN kosong TIDAK fatal: DB dibiarkan
// nil, store jalan mode unconfigured (jalur baca fallback ke data mẫu,
// semua operasi tulis ditolak).
func ConnectDB() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" && os.Getenv("DB_HOST") != "" {
		sslmode := configs.GetEnv("DB_SSLMODE", "require")
		dsn = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=aos_backend&options=-c statement_timeout=3000",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_NAME"),
			sslmode,
		)
	}
	if dsn == "" {
		log.Println("⚠️  DATABASE_URL/DB_HOST kosong — jalan tanpa DB (mode data mẫu)")
		return
	}

	log.Println("🔌 Koneksi ke PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
}

// Migrate menjalankan AutoMigrate untuk semua model aplikasi.
func Migrate() {
	if DB == nil {
		return
	}
	if err := DB.AutoMigrate(
		&clergyModel.ClergyModel{},
		&clergyModel.RoleGroupModel{},
		&orgModel.AosInfoModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}

func WarmUpQueries() {
	if DB == nil {
		return
	}
	start := time.Now()
	var one int
	if err := DB.Raw("SELECT 1").Scan(&one).Error; err != nil {
		log.Printf("warm-up err: %v", err)
		return
	}
	log.Printf("🔥 DB warm-up selesai dalam %s", time.Since(start))
}
