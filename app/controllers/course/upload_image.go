package courses

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lkuo/naf-backend/app/guard"
	"github.com/lkuo/naf-backend/pkg/encryption"
	"github.com/lkuo/naf-backend/pkg/utils"
	"github.com/nfnt/resize"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxImageSize = 10 * 1024 * 1024 // 10 MB

// UploadImage handles POST /courses/:courseId/image. The caller must own
// the course; oversized images are downscaled before upload.
func (h *Handler) UploadImage(c *gin.Context) {
	credentialID, err := utils.GetCredentialIDFromContext(c)
	if err != nil {
		utils.ServerErrorResponse(c, utils.ErrCredentialIDNotFound, err)
		return
	}

	courseID, err := primitive.ObjectIDFromHex(c.Param("courseId"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Course Id is requested")
		return
	}

	file, err := c.FormFile("image")
	if err != nil || file.Size <= 0 {
		utils.ErrorResponse(c, 400, "No file uploaded.")
		return
	}

	ctx := c.Request.Context()

	if _, err := guard.VerifyOwner(ctx, h.credentials, h.profiles, credentialID, courseID, h.courseOwner); err != nil {
		respondGateError(c, err)
		return
	}

	body, contentType, err := readImageFile(file)
	if err != nil {
		utils.ErrorResponse(c, 400, err.Error())
		return
	}

	// Storage key: course<id>/<imageId>-<filename>
	cleanedFilename := strings.ReplaceAll(file.Filename, " ", "")
	key := fmt.Sprintf("course%s/%d-%s", courseID.Hex(), encryption.GenerateID(), cleanedFilename)

	savedKey, err := h.uploader.Upload(ctx, key, contentType, body)
	if err != nil {
		utils.ServerErrorResponse(c, utils.ErrUploadFailed, err)
		return
	}

	if err := h.courses.SetImageLink(ctx, courseID, savedKey); err != nil {
		utils.ServerErrorResponse(c, utils.ErrSaveData, err)
		return
	}

	h.invalidateCourseCache(ctx, courseID)

	c.JSON(200, gin.H{"imageLink": savedKey})
}

// readImageFile reads the upload into memory, downscaling anything over
// the size cap to a 1024px-wide JPEG.
func readImageFile(file *multipart.FileHeader) ([]byte, string, error) {
	srcFile, err := file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("Error opening image")
	}
	defer srcFile.Close()

	contentType := file.Header.Get("Content-Type")

	if file.Size <= maxImageSize {
		var src bytes.Buffer
		if _, err := src.ReadFrom(srcFile); err != nil {
			return nil, "", fmt.Errorf("Error reading image")
		}
		return src.Bytes(), contentType, nil
	}

	img, _, err := image.Decode(srcFile)
	if err != nil {
		return nil, "", fmt.Errorf("Error decoding image")
	}
	// Resize image to maximum width 1024px, keeping aspect ratio
	resizedImg := resize.Resize(1024, 0, img, resize.Lanczos3)

	var src bytes.Buffer
	if err := jpeg.Encode(&src, resizedImg, &jpeg.Options{Quality: 80}); err != nil {
		return nil, "", fmt.Errorf("Error encoding resized image")
	}
	if src.Len() > maxImageSize {
		return nil, "", fmt.Errorf("Image too large after compression")
	}
	return src.Bytes(), "image/jpeg", nil
}
