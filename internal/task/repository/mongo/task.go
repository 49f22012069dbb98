package mongo

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"voice-task-management/internal/task"
	repo "voice-task-management/internal/task/repository"
)

// taskDoc is the stored document shape.
type taskDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Status      string             `bson:"status"`
	Priority    string             `bson:"priority"`
	DueDate     *time.Time         `bson:"due_date,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d taskDoc) toDomain() task.Task {
	return task.Task{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Status:      task.Status(d.Status),
		Priority:    task.Priority(d.Priority),
		DueDate:     d.DueDate,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// CreateTask inserts a new task document and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	now := time.Now()
	doc := taskDoc{
		ID:          primitive.NewObjectID(),
		Title:       opt.Title,
		Description: opt.Description,
		Status:      string(opt.Status),
		Priority:    string(opt.Priority),
		DueDate:     opt.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}
	return doc.toDomain(), nil
}

// GetTask retrieves a task by ID. A malformed or unknown ID yields a
// zero-value Task, not an error.
func (r *implRepository) GetTask(ctx context.Context, id string) (task.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return task.Task{}, nil
	}

	var doc taskDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return task.Task{}, repo.ErrFailedToGet
	}
	return doc.toDomain(), nil
}

// ListTasks returns tasks matching the filter, newest first.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, error) {
	filter := bson.M{}
	if opt.Status != "" {
		filter["status"] = opt.Status
	}
	if opt.Priority != "" {
		filter["priority"] = opt.Priority
	}
	if opt.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(opt.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer cursor.Close(ctx)

	var tasks []task.Task
	for cursor.Next(ctx) {
		var doc taskDoc
		if err := cursor.Decode(&doc); err != nil {
			r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		r.l.Errorf(ctx, "%s cursor: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask replaces the mutable fields of a task and returns the updated
// entity. Not-found yields a zero-value Task.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(opt.ID)
	if err != nil {
		return task.Task{}, nil
	}

	set := bson.M{
		"title":       opt.Title,
		"description": opt.Description,
		"status":      string(opt.Status),
		"priority":    string(opt.Priority),
		"updated_at":  time.Now(),
	}
	update := bson.M{"$set": set}
	if opt.DueDate != nil {
		set["due_date"] = opt.DueDate
	} else {
		update["$unset"] = bson.M{"due_date": ""}
	}

	after := options.After
	var doc taskDoc
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		update,
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	return doc.toDomain(), nil
}

// DeleteTask removes a task by ID. Returns false when no document matched.
func (r *implRepository) DeleteTask(ctx context.Context, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	return res.DeletedCount > 0, nil
}
