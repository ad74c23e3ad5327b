package mongo

import (
	"alcyxob/football-training/internal/domain"
	"alcyxob/football-training/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func mesocycleDoc(id int32, name string) bson.D {
	return bson.D{
		{Key: "id", Value: id},
		{Key: "nombre", Value: name},
		{Key: "mes", Value: "Mes 1"},
		{Key: "descripcion", Value: "d"},
		{Key: "color", Value: "bg-blue-500"},
		{Key: "objetivo", Value: "o"},
		{Key: "semanas", Value: int32(4)},
	}
}

func TestMongoMesocycleRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("List decodes and sorts by id", func(mt *mtest.T) {
		repo := NewMongoMesocycleRepository(mt.DB)
		ns := mt.DB.Name() + "." + mesocycleCollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			mesocycleDoc(1, "Adaptación y Familiarización"),
			mesocycleDoc(2, "Técnica Individual Básica"),
		))

		mesocycles, err := repo.List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, mesocycles, 2)
		assert.Equal(mt, 1, mesocycles[0].ID)
		assert.Equal(mt, "Técnica Individual Básica", mesocycles[1].Name)
		assert.Equal(mt, 4, mesocycles[1].Weeks)

		sort := mt.GetStartedEvent().Command.Lookup("sort").Document()
		assert.Equal(mt, int64(1), sort.Lookup("id").AsInt64())
	})

	mt.Run("List of empty collection is empty slice", func(mt *mtest.T) {
		repo := NewMongoMesocycleRepository(mt.DB)
		ns := mt.DB.Name() + "." + mesocycleCollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		mesocycles, err := repo.List(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, mesocycles)
		assert.Empty(mt, mesocycles)
	})

	mt.Run("GetByID filters on the integer id", func(mt *mtest.T) {
		repo := NewMongoMesocycleRepository(mt.DB)
		ns := mt.DB.Name() + "." + mesocycleCollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, mesocycleDoc(3, "Técnica Individual Avanzada")))

		m, err := repo.GetByID(context.Background(), 3)
		require.NoError(mt, err)
		assert.Equal(mt, "Técnica Individual Avanzada", m.Name)

		filter := mt.GetStartedEvent().Command.Lookup("filter").Document()
		assert.Equal(mt, int64(3), filter.Lookup("id").AsInt64())
	})

	mt.Run("GetByID not found", func(mt *mtest.T) {
		repo := NewMongoMesocycleRepository(mt.DB)
		ns := mt.DB.Name() + "." + mesocycleCollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetByID(context.Background(), 999)
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("GetByID store error is not ErrNotFound", func(mt *mtest.T) {
		repo := NewMongoMesocycleRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 2, Name: "BadValue", Message: "boom",
		}))

		_, err := repo.GetByID(context.Background(), 1)
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("InsertMany", func(mt *mtest.T) {
		repo := NewMongoMesocycleRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.InsertMany(context.Background(), []domain.Mesocycle{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})
		require.NoError(mt, err)

		docs := mt.GetStartedEvent().Command.Lookup("documents").Array()
		values, err := docs.Values()
		require.NoError(mt, err)
		assert.Len(mt, values, 2)
	})

	mt.Run("InsertMany duplicate id", func(mt *mtest.T) {
		repo := NewMongoMesocycleRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "duplicate key error",
		}))

		err := repo.InsertMany(context.Background(), []domain.Mesocycle{{ID: 1}})
		assert.Error(mt, err)
	})

	mt.Run("Count", func(mt *mtest.T) {
		repo := NewMongoMesocycleRepository(mt.DB)
		ns := mt.DB.Name() + "." + mesocycleCollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(5)}}))

		count, err := repo.Count(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, int64(5), count)
	})
}

func TestMongoWeeklyTrainingRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("GetByMesocycleID filters on mesociclo_id", func(mt *mtest.T) {
		repo := NewMongoWeeklyTrainingRepository(mt.DB)
		ns := mt.DB.Name() + "." + weeklyTrainingCollectionName
		week := bson.D{
			{Key: "id", Value: int32(1)},
			{Key: "mesociclo_id", Value: int32(1)},
			{Key: "semana", Value: int32(1)},
			{Key: "sesiones", Value: bson.A{
				bson.D{
					{Key: "id", Value: int32(1)},
					{Key: "tipo", Value: domain.CategoryTechnical},
					{Key: "nombre", Value: "Familiarización con el balón"},
					{Key: "dia", Value: "Lunes"},
					{Key: "duracion", Value: int32(90)},
					{Key: "imagen", Value: "https://images.example.test/1.jpg"},
					{Key: "ejercicios", Value: bson.A{
						bson.D{{Key: "id", Value: int32(1)}, {Key: "nombre", Value: "Calentamiento"}, {Key: "duracion", Value: int32(40)}},
						bson.D{{Key: "id", Value: int32(2)}, {Key: "nombre", Value: "Partido"}, {Key: "duracion", Value: int32(50)}},
					}},
				},
			}},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, week))

		weeks, err := repo.GetByMesocycleID(context.Background(), 1)
		require.NoError(mt, err)
		require.Len(mt, weeks, 1)
		require.Len(mt, weeks[0].Sessions, 1)
		session := weeks[0].Sessions[0]
		assert.Equal(mt, domain.CategoryTechnical, session.Category)
		assert.Equal(mt, 90, session.ExerciseMinutes())

		cmd := mt.GetStartedEvent().Command
		filter := cmd.Lookup("filter").Document()
		assert.Equal(mt, int64(1), filter.Lookup("mesociclo_id").AsInt64())
		_, err = filter.LookupErr("mesocicloId")
		assert.Error(mt, err)
		sort := cmd.Lookup("sort").Document()
		assert.Equal(mt, int64(1), sort.Lookup("semana").AsInt64())
	})

	mt.Run("GetByMesocycleID unknown id is empty", func(mt *mtest.T) {
		repo := NewMongoWeeklyTrainingRepository(mt.DB)
		ns := mt.DB.Name() + "." + weeklyTrainingCollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		weeks, err := repo.GetByMesocycleID(context.Background(), 999)
		require.NoError(mt, err)
		assert.NotNil(mt, weeks)
		assert.Empty(mt, weeks)
	})

	mt.Run("GetByMesocycleID store error", func(mt *mtest.T) {
		repo := NewMongoWeeklyTrainingRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "boom"}))

		_, err := repo.GetByMesocycleID(context.Background(), 1)
		assert.Error(mt, err)
	})

	mt.Run("InsertMany of nothing skips the round trip", func(mt *mtest.T) {
		repo := NewMongoWeeklyTrainingRepository(mt.DB)
		require.NoError(mt, repo.InsertMany(context.Background(), nil))
		assert.Nil(mt, mt.GetStartedEvent())
	})
}

func TestMongoPlanRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Create fills id and creation time", func(mt *mtest.T) {
		repo := NewMongoPlanRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		plan := &domain.FullPlan{Title: "Entrenamiento Fútbol 7 - Benjamines", DurationMonths: 5}
		require.NoError(mt, repo.Create(context.Background(), plan))
		assert.NotEmpty(mt, plan.ID)
		assert.False(mt, plan.CreatedAt.IsZero())

		doc := mt.GetStartedEvent().Command.Lookup("documents").Array().Index(0).Value().Document()
		assert.Equal(mt, plan.ID, doc.Lookup("id").StringValue())
		assert.Equal(mt, plan.Title, doc.Lookup("titulo").StringValue())
		_, err := doc.LookupErr("updated_at")
		assert.Error(mt, err, "unset updated_at is omitted")
	})

	mt.Run("Create requires a title", func(mt *mtest.T) {
		repo := NewMongoPlanRepository(mt.DB)
		assert.Error(mt, repo.Create(context.Background(), &domain.FullPlan{}))
	})

	mt.Run("GetFirst sorts by created_at", func(mt *mtest.T) {
		repo := NewMongoPlanRepository(mt.DB)
		ns := mt.DB.Name() + "." + planCollectionName
		created := time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "id", Value: "plan-1"},
			{Key: "titulo", Value: "Entrenamiento Fútbol 7 - Benjamines"},
			{Key: "duracion_meses", Value: int32(5)},
			{Key: "sesiones_por_semana", Value: int32(3)},
			{Key: "duracion_sesion", Value: int32(90)},
			{Key: "material_basico", Value: bson.A{"Silbato"}},
			{Key: "created_at", Value: created},
		}))

		plan, err := repo.GetFirst(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, "plan-1", plan.ID)
		assert.Equal(mt, 3, plan.SessionsPerWeek)
		assert.Equal(mt, []string{"Silbato"}, plan.BasicMaterial)
		assert.True(mt, created.Equal(plan.CreatedAt))
		assert.Nil(mt, plan.UpdatedAt)

		sort := mt.GetStartedEvent().Command.Lookup("sort").Document()
		assert.Equal(mt, int64(1), sort.Lookup("created_at").AsInt64())
	})

	mt.Run("GetFirst with no plan", func(mt *mtest.T) {
		repo := NewMongoPlanRepository(mt.DB)
		ns := mt.DB.Name() + "." + planCollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetFirst(context.Background())
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}
