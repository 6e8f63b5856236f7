package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/academically/academically-api/internal/models"
)

type seedInstitute struct {
	acronym       string
	name          string
	address       string
	email         string
	phone         string
	studentNumber int
	teacherNumber int
	webSite       *string
	facebook      *string
	instagram     *string
	twitter       *string
	youtube       *string
	careers       []seedCareer
}

type seedCareer struct {
	careerID int
	name     string
	acronym  string
}

type seedEvent struct {
	title     string
	shortDesc string
	longDesc  string
	location  string
	date      time.Time
	category  string
}

func str(s string) *string { return &s }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var seedInstitutes = []seedInstitute{
	{
		acronym:       "ITP",
		name:          "Instituto Tecnológico de Puebla",
		address:       "Del Tecnológico 420, Corredor Industrial la Ciénega, 72220 Heroica Puebla de Zaragoza, Pue.",
		email:         "info@puebla.tecnm.mx",
		phone:         "222 229 8810",
		studentNumber: 6284,
		teacherNumber: 298,
		webSite:       str("https://www.puebla.tecnm.mx"),
		facebook:      str("https://www.facebook.com/TecNMPuebla"),
		instagram:     str("https://www.instagram.com/tecnmpuebla"),
		youtube:       str("https://www.youtube.com/user/TECPUEBLA"),
		careers: []seedCareer{
			{1, "Ingeniería en Tecnologías de la Información y Comunicaciones", "TICS"},
			{2, "Ingeniería Industrial", "Ing. Indust"},
			{3, "Ingeniería Electrónica", "Electrónica"},
			{4, "Ingeniería Eléctrica", "Eléctrica"},
			{5, "Ingeniería en Gestión Empresarial", "Gestión Empresarial"},
			{6, "Ingeniería Mecánica", "Mecánica"},
		},
	},
	{
		acronym:       "ITT",
		name:          "Instituto Tecnológico de Tijuana",
		address:       "Calzada del Tecnológico S/N, Fraccionamiento Tomas Aquino, 22414 Tijuana, B.C.",
		email:         "webmaster@tectijuana.mx",
		phone:         "664 607 8400",
		studentNumber: 7500,
		teacherNumber: 350,
		webSite:       str("https://www.tijuana.tecnm.mx"),
		facebook:      str("https://www.facebook.com/tectijuana"),
		instagram:     str("https://www.instagram.com/tecnmtijuana"),
		careers: []seedCareer{
			{7, "Licenciatura en Administración", "Administración"},
			{8, "Ingeniería en Tecnologías de la Información y Comunicaciones", "TICS"},
		},
	},
	{
		acronym:       "ITH",
		name:          "Instituto Tecnológico de Hermosillo",
		address:       "Av. Tecnológico S/N, Col. El Sahuaro, 83170 Hermosillo, Son.",
		email:         "contacto@hermosillo.tecnm.mx",
		phone:         "662 260 6500",
		studentNumber: 4200,
		teacherNumber: 220,
		webSite:       str("https://www.hermosillo.tecnm.mx"),
		facebook:      str("https://www.facebook.com/TecNMHermosillo"),
		careers: []seedCareer{
			{9, "Ingeniería Industrial", "Ing. Indust"},
			{10, "Ingeniería Electrónica", "Electrónica"},
		},
	},
	{
		acronym:       "ITT",
		name:          "Instituto Tecnológico de Toluca",
		address:       "Av. Tecnológico s/n, Agrícola Bella Vista, 52149 Metepec, Méx.",
		email:         "webmaster@toluca.tecnm.mx",
		phone:         "722 208 7200",
		studentNumber: 5800,
		teacherNumber: 310,
		webSite:       str("https://www.toluca.tecnm.mx"),
		careers: []seedCareer{
			{11, "Ingeniería Eléctrica", "Eléctrica"},
			{12, "Ingeniería en Gestión Empresarial", "Gestión Empresarial"},
		},
	},
	{
		acronym:       "ITSX",
		name:          "Instituto Tecnológico Superior de Xalapa",
		address:       "Sección 5A, Reserva Territorial, 91060 Xalapa, Ver.",
		email:         "contacto@itsx.edu.mx",
		phone:         "228 165 0525",
		studentNumber: 3800,
		teacherNumber: 190,
		webSite:       str("https://www.itsx.edu.mx"),
		facebook:      str("https://www.facebook.com/ITSXalapa"),
		instagram:     str("https://www.instagram.com/itsxalapa"),
		youtube:       str("https://www.youtube.com/user/ITSXalapa"),
		careers: []seedCareer{
			{13, "Ingeniería Mecánica", "Mecánica"},
			{14, "Licenciatura en Administración", "Administración"},
		},
	},
}

var seedEvents = []seedEvent{
	{
		title:     "INNOVATECNMN 2025",
		shortDesc: "Registro para estudiantes lider",
		longDesc: "Cumbre nacional de desarrollo tecnológico, investigación e innovación INOVATECNM. Dirigida al estudiantado inscrito\n" +
			" al periodo Enero-Junio 2025 personal docente y de investigación del Instituto Tecnológico de Puebla",
		location: "Edificio 53",
		date:     date(2025, time.November, 28),
		category: models.CategoryInstitutional,
	},
	{
		title:     "Congreso Internacional en agua limpia y saneamiento del TECNM",
		shortDesc: "Registro para estudiantes",
		longDesc:  "Participa en el 1er. Congreso Internacional de Agua Limpia y Saneamiento del TECNM",
		location:  "Edificio 53",
		date:      date(2025, time.September, 25),
		category:  models.CategoryInstitutional,
	},
	{
		title:     "Concurso de Programación 2025",
		shortDesc: "Para estudiantes de TICS",
		longDesc:  "Invitación a los estudiantes de TICS a participar en el concurso de programación de 2025 sin costo",
		location:  "Edificio 36",
		date:      date(2025, time.April, 28),
		category:  models.CategoryCareer,
	},
	{
		title:     "Jornadas de TICS 2025",
		shortDesc: "Conferencias internacionales",
		longDesc:  "Participa en las jornadas de TICS del año 2025 con conferencistas internacionales, estaremos enfocados en el auge de la inteligencia artificial",
		location:  "Edificio 36",
		date:      date(2025, time.September, 15),
		category:  models.CategoryCareer,
	},
	{
		title:     "Plática de Servicio Social",
		shortDesc: "Información importante",
		longDesc:  "Información sobre los requisitos y proceso para realizar el servicio social",
		location:  "Edificio 36",
		date:      date(2025, time.May, 10),
		category:  models.CategoryCareer,
	},
}

// Seed inserts the fixed institute/career dataset and the sample ITP events.
// It is idempotent: each block only runs against an empty table.
func Seed(ctx context.Context, db *sqlx.DB, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var instituteCount int
	if err := tx.GetContext(ctx, &instituteCount, "SELECT COUNT(*) FROM institutes"); err != nil {
		return fmt.Errorf("seed: count institutes: %w", err)
	}

	if instituteCount == 0 {
		for _, inst := range seedInstitutes {
			var id int
			err := tx.QueryRowxContext(ctx,
				`INSERT INTO institutes (acronym, name, address, email, phone, student_number, teacher_number, website, facebook, instagram, twitter, youtube)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`,
				inst.acronym, inst.name, inst.address, inst.email, inst.phone,
				inst.studentNumber, inst.teacherNumber,
				inst.webSite, inst.facebook, inst.instagram, inst.twitter, inst.youtube,
			).Scan(&id)
			if err != nil {
				return fmt.Errorf("seed: insert institute %s: %w", inst.acronym, err)
			}
			for _, career := range inst.careers {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO careers (career_id, name, acronym, email, phone, institute_id)
VALUES ($1, $2, $3, NULL, NULL, $4)`,
					career.careerID, career.name, career.acronym, id,
				); err != nil {
					return fmt.Errorf("seed: insert career %d: %w", career.careerID, err)
				}
			}
		}
		logger.Info("seeded institutes", zap.Int("count", len(seedInstitutes)))
	}

	var eventCount int
	if err := tx.GetContext(ctx, &eventCount, "SELECT COUNT(*) FROM blog_events"); err != nil {
		return fmt.Errorf("seed: count events: %w", err)
	}

	if eventCount == 0 {
		var itpID int
		err := tx.GetContext(ctx, &itpID,
			"SELECT id FROM institutes WHERE acronym = $1 ORDER BY id LIMIT 1", "ITP")
		if err != nil {
			return fmt.Errorf("seed: resolve ITP: %w", err)
		}
		now := time.Now().UTC()
		for _, ev := range seedEvents {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO blog_events (title, short_description, long_description, location, start_date, end_date, category, image_path, institute_id, created_at, updated_at, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, '', $8, $9, $9, TRUE)`,
				ev.title, ev.shortDesc, ev.longDesc, ev.location,
				ev.date, ev.date, ev.category, itpID, now,
			); err != nil {
				return fmt.Errorf("seed: insert event %q: %w", ev.title, err)
			}
		}
		logger.Info("seeded sample events", zap.Int("count", len(seedEvents)))
	}

	return tx.Commit()
}
