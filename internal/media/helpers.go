package media

// imageKeys are the asset data attributes holding a preview image, by priority
var imageKeys = []string{"img", "image", "glbthumb"}

// ImageRef returns the preview image reference of an asset's data
func ImageRef(data map[string]interface{}) string {
	for _, key := range imageKeys {
		if v, ok := data[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// VideoRef returns the video reference of an asset's data
func VideoRef(data map[string]interface{}) string {
	if v, ok := data["video"].(string); ok {
		return v
	}
	return ""
}
