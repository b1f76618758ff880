package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ssx_solar/internal/domain/entities"
	"ssx_solar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultServiceRequestsTableName = "serviceRequests"

type addressItem struct {
	Street       string `dynamodbav:"street"`
	Number       string `dynamodbav:"number"`
	Complement   string `dynamodbav:"complement,omitempty"`
	Neighborhood string `dynamodbav:"neighborhood"`
	City         string `dynamodbav:"city"`
	State        string `dynamodbav:"state"`
	ZipCode      string `dynamodbav:"zip_code"`
}

type imageItem struct {
	URL        string `dynamodbav:"url"`
	UploadedAt string `dynamodbav:"uploaded_at"`
}

type serviceRequestItem struct {
	ID             string      `dynamodbav:"id"`
	ClientID       string      `dynamodbav:"client_id"`
	EquipmentType  string      `dynamodbav:"equipment_type"`
	ProductID      string      `dynamodbav:"product_id,omitempty"`
	Address        addressItem `dynamodbav:"address"`
	Notes          string      `dynamodbav:"notes,omitempty"`
	Priority       string      `dynamodbav:"priority"`
	Status         string      `dynamodbav:"status"`
	InstallerID    string      `dynamodbav:"installer_id,omitempty"`
	InstallerName  string      `dynamodbav:"installer_name,omitempty"`
	TechnicalNotes string      `dynamodbav:"technical_notes,omitempty"`
	Images         []imageItem `dynamodbav:"images,omitempty"`
	CreatedAt      string      `dynamodbav:"created_at"`
	UpdatedAt      string      `dynamodbav:"updated_at"`
	StartedAt      string      `dynamodbav:"started_at,omitempty"`
	PausedAt       string      `dynamodbav:"paused_at,omitempty"`
	CompletedAt    string      `dynamodbav:"completed_at,omitempty"`
	ConfirmedAt    string      `dynamodbav:"confirmed_at,omitempty"`
	CancelledAt    string      `dynamodbav:"cancelled_at,omitempty"`
}

// ServiceRequestDynamoRepository persists ServiceRequest entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Filtered listings (by client, by installer) are done by the use case over
// List; the table carries no GSI for them.

type ServiceRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

func NewServiceRequestDynamoRepository(ddb *dynamodb.Client) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_REQUESTS_TABLE", defaultServiceRequestsTableName),
	}
}

func (r *ServiceRequestDynamoRepository) Insert(ctx context.Context, req entities.ServiceRequest) (entities.ServiceRequest, error) {
	now := time.Now().UTC()
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = now
	}
	req.UpdatedAt = req.CreatedAt

	av, err := attributevalue.MarshalMap(toServiceRequestItem(req))
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	return req, nil
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) List(ctx context.Context) ([]entities.ServiceRequest, error) {
	var (
		out      []entities.ServiceRequest
		startKey map[string]types.AttributeValue
	)
	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []serviceRequestItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromServiceRequestItem(it))
		}
		if page.LastEvaluatedKey == nil {
			return out, nil
		}
		startKey = page.LastEvaluatedKey
	}
}

func (r *ServiceRequestDynamoRepository) Patch(ctx context.Context, id string, fields entities.RequestPatch) (entities.ServiceRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	expr, values, names := buildPatchExpression(fields, now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceRequest{}, nil
		}
		return entities.ServiceRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceRequest{}, nil
	}
	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

// buildPatchExpression translates a RequestPatch into a DynamoDB update
// expression. updated_at is always part of the SET clause.
func buildPatchExpression(fields entities.RequestPatch, now string) (string, map[string]types.AttributeValue, map[string]string) {
	sets := []string{"#updated_at = :updated_at"}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
	}

	setString := func(attr string, v *string) {
		if v == nil {
			return
		}
		ph := "#" + attr
		names[ph] = attr
		sets = append(sets, fmt.Sprintf("%s = :%s", ph, attr))
		values[":"+attr] = &types.AttributeValueMemberS{Value: *v}
	}
	setTime := func(attr string, v *time.Time) {
		if v == nil {
			return
		}
		formatted := v.UTC().Format(time.RFC3339Nano)
		setString(attr, &formatted)
	}

	if fields.Status != nil {
		s := string(*fields.Status)
		setString("status", &s)
	}
	if fields.Priority != nil {
		p := string(*fields.Priority)
		setString("priority", &p)
	}
	setString("installer_id", fields.InstallerID)
	setString("installer_name", fields.InstallerName)
	setString("technical_notes", fields.TechnicalNotes)
	setString("notes", fields.Notes)
	setTime("started_at", fields.StartedAt)
	setTime("completed_at", fields.CompletedAt)
	setTime("confirmed_at", fields.ConfirmedAt)
	setTime("cancelled_at", fields.CancelledAt)
	if fields.PausedAt != nil && !fields.ClearPausedAt {
		setTime("paused_at", fields.PausedAt)
	}

	if len(fields.AppendImages) > 0 {
		names["#images"] = "images"
		sets = append(sets, "#images = list_append(if_not_exists(#images, :empty_images), :new_images)")
		values[":empty_images"] = &types.AttributeValueMemberL{}
		imgs := make([]types.AttributeValue, 0, len(fields.AppendImages))
		for _, img := range fields.AppendImages {
			imgs = append(imgs, &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
				"url":         &types.AttributeValueMemberS{Value: img.URL},
				"uploaded_at": &types.AttributeValueMemberS{Value: img.UploadedAt.UTC().Format(time.RFC3339Nano)},
			}})
		}
		values[":new_images"] = &types.AttributeValueMemberL{Value: imgs}
	}

	expr := "SET " + strings.Join(sets, ", ")
	if fields.ClearPausedAt {
		names["#paused_at"] = "paused_at"
		expr += " REMOVE #paused_at"
	}
	return expr, values, names
}

func toServiceRequestItem(req entities.ServiceRequest) serviceRequestItem {
	it := serviceRequestItem{
		ID:            req.ID,
		ClientID:      req.ClientID,
		EquipmentType: string(req.EquipmentType),
		ProductID:     req.ProductID,
		Address: addressItem{
			Street:       req.Address.Street,
			Number:       req.Address.Number,
			Complement:   req.Address.Complement,
			Neighborhood: req.Address.Neighborhood,
			City:         req.Address.City,
			State:        req.Address.State,
			ZipCode:      req.Address.ZipCode,
		},
		Notes:          req.Notes,
		Priority:       string(req.Priority),
		Status:         string(req.Status),
		InstallerID:    req.InstallerID,
		InstallerName:  req.InstallerName,
		TechnicalNotes: req.TechnicalNotes,
		CreatedAt:      req.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      req.UpdatedAt.UTC().Format(time.RFC3339Nano),
		StartedAt:      timeToString(req.StartedAt),
		PausedAt:       timeToString(req.PausedAt),
		CompletedAt:    timeToString(req.CompletedAt),
		ConfirmedAt:    timeToString(req.ConfirmedAt),
		CancelledAt:    timeToString(req.CancelledAt),
	}
	for _, img := range req.Images {
		it.Images = append(it.Images, imageItem{
			URL:        img.URL,
			UploadedAt: img.UploadedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return it
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	req := entities.ServiceRequest{
		ID:            it.ID,
		ClientID:      it.ClientID,
		EquipmentType: entities.EquipmentType(it.EquipmentType),
		ProductID:     it.ProductID,
		Address: entities.Address{
			Street:       it.Address.Street,
			Number:       it.Address.Number,
			Complement:   it.Address.Complement,
			Neighborhood: it.Address.Neighborhood,
			City:         it.Address.City,
			State:        it.Address.State,
			ZipCode:      it.Address.ZipCode,
		},
		Notes:          it.Notes,
		Priority:       entities.RequestPriority(it.Priority),
		Status:         entities.RequestStatus(it.Status),
		InstallerID:    it.InstallerID,
		InstallerName:  it.InstallerName,
		TechnicalNotes: it.TechnicalNotes,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
		StartedAt:      stringToTime(it.StartedAt),
		PausedAt:       stringToTime(it.PausedAt),
		CompletedAt:    stringToTime(it.CompletedAt),
		ConfirmedAt:    stringToTime(it.ConfirmedAt),
		CancelledAt:    stringToTime(it.CancelledAt),
	}
	for _, img := range it.Images {
		uploadedAt, _ := time.Parse(time.RFC3339Nano, img.UploadedAt)
		req.Images = append(req.Images, entities.RequestImage{URL: img.URL, UploadedAt: uploadedAt})
	}
	return req
}

func timeToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func stringToTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
