package main

import (
	"log"

	"nodo360/config"
	"nodo360/database"
	"nodo360/models"
	courseModels "nodo360/models/course"

	"golang.org/x/crypto/bcrypt"
)

// Seeds an admin account and a demo Bitcoin fundamentals course with three
// sequential modules, lessons and a quiz per gated module. Safe to re-run:
// skips seeding when the course already exists.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	var existing courseModels.Course
	if err := db.Where("title = ? AND is_deleted = ?", "Bitcoin desde Cero", false).First(&existing).Error; err == nil {
		log.Println("Demo course already seeded, nothing to do")
		return
	}

	// Admin account
	var admin models.User
	if err := db.Where("email = ?", "admin@nodo360.com").First(&admin).Error; err != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin12345"), config.AppConfig.SaltRound)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		admin = models.User{
			Name:     "Nodo360 Admin",
			Email:    "admin@nodo360.com",
			Role:     "ADMIN",
			Password: string(hashed),
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Created admin user %s", admin.Email)
	}

	course := courseModels.Course{
		Title:       "Bitcoin desde Cero",
		Description: "Curso introductorio: qué es Bitcoin, cómo funciona la red y cómo custodiar tus llaves.",
		Author:      "Nodo360",
		Duration:    12,
		IsFree:      true,
		Status:      "ACTIVE",
		IsPublished: true,
	}
	if err := db.Create(&course).Error; err != nil {
		log.Fatalf("Failed to create course: %v", err)
	}

	type lessonSeed struct {
		Title   string
		Content string
	}
	type moduleSeed struct {
		Title        string
		RequiresQuiz bool
		Lessons      []lessonSeed
		Quiz         map[string][]string // prompt -> options, first option is correct
	}

	modules := []moduleSeed{
		{
			Title:        "¿Qué es Bitcoin?",
			RequiresQuiz: true,
			Lessons: []lessonSeed{
				{"El problema del dinero", "Historia del dinero y por qué importa la escasez."},
				{"Nace Bitcoin", "El whitepaper de 2008 y la primera transacción."},
				{"Dinero sin intermediarios", "Qué significa verificar en lugar de confiar."},
			},
			Quiz: map[string][]string{
				"¿Cuántos bitcoins existirán como máximo?": {"21 millones", "100 millones", "No hay límite"},
				"¿Quién publicó el whitepaper de Bitcoin?": {"Satoshi Nakamoto", "Vitalik Buterin", "Hal Finney"},
			},
		},
		{
			Title:        "La red y la minería",
			RequiresQuiz: true,
			Lessons: []lessonSeed{
				{"Nodos y consenso", "Qué hace un nodo completo y por qué correr el tuyo."},
				{"Prueba de trabajo", "Cómo la minería ordena las transacciones."},
				{"El halving", "La emisión programada y sus ciclos."},
			},
			Quiz: map[string][]string{
				"¿Qué valida un nodo completo?": {"Todas las reglas de consenso", "Solo su propio saldo", "Nada, delega en los mineros"},
			},
		},
		{
			Title:        "Custodia y llaves privadas",
			RequiresQuiz: false,
			Lessons: []lessonSeed{
				{"Not your keys, not your coins", "Custodia propia contra custodia de terceros."},
				{"Frase semilla", "Cómo respaldar y proteger tus 12 o 24 palabras."},
			},
		},
	}

	for mi, ms := range modules {
		module := courseModels.Module{
			CourseID:     course.ID,
			Title:        ms.Title,
			Position:     mi + 1,
			RequiresQuiz: ms.RequiresQuiz,
		}
		if err := db.Create(&module).Error; err != nil {
			log.Fatalf("Failed to create module %q: %v", ms.Title, err)
		}

		for li, ls := range ms.Lessons {
			lesson := courseModels.Lesson{
				CourseID:    course.ID,
				ModuleID:    module.ID,
				Title:       ls.Title,
				ContentType: "TEXT",
				TextContent: ls.Content,
				Position:    li + 1,
			}
			if err := db.Create(&lesson).Error; err != nil {
				log.Fatalf("Failed to create lesson %q: %v", ls.Title, err)
			}
		}

		qi := 0
		for prompt, options := range ms.Quiz {
			qi++
			question := courseModels.QuizQuestion{
				ModuleID: module.ID,
				Prompt:   prompt,
				Position: qi,
			}
			if err := db.Create(&question).Error; err != nil {
				log.Fatalf("Failed to create question: %v", err)
			}
			for oi, text := range options {
				option := courseModels.QuizOption{
					QuestionID: question.ID,
					OptionText: text,
					IsCorrect:  oi == 0,
					Position:   oi + 1,
				}
				if err := db.Create(&option).Error; err != nil {
					log.Fatalf("Failed to create option: %v", err)
				}
			}
		}
	}

	log.Printf("Seeded course %q with %d modules", course.Title, len(modules))
}
