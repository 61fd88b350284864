package scene

// Terrain shaders. The vertex stage displaces the shared unit patch by the
// height texture and morphs vertices toward the coarser grid between the
// inner and outer radii so neighboring detail levels meet without cracks.
const (
	terrainVertexShader = `
#version 410 core

layout (location = 0) in vec3 position;
layout (location = 1) in vec2 corner;

uniform mat4 view_proj;
uniform mat4 model;
uniform sampler2D height_map;

uniform vec3 morph_const;
uniform float quad_size;
uniform vec3 quad_min;
uniform float map_size;
uniform vec3 camera_pos;
uniform float xz_scale;
uniform float y_scale;

out vec2 height_uv;
out vec3 world_pos;

void main() {
	vec2 grid = quad_min.xz + position.xz * quad_size;

	float dist = distance(camera_pos.xz, grid);
	float morph = clamp((dist - morph_const.y) / (morph_const.x - morph_const.y), 0.0, 1.0);

	// Odd vertices slide onto the even grid of the parent level.
	float cell = quad_size / 16.0;
	vec2 snapped = floor(grid / (cell * 2.0) + 0.5) * cell * 2.0;
	grid = mix(grid, snapped, morph);

	height_uv = grid / map_size;
	float h = texture(height_map, height_uv).r * y_scale;

	world_pos = (model * vec4(grid.x * xz_scale, h, grid.y * xz_scale, 1.0)).xyz;
	gl_Position = view_proj * vec4(world_pos, 1.0);
}
`

	terrainFragmentShader = `
#version 410 core

in vec2 height_uv;
in vec3 world_pos;

uniform sampler2D height_map;
uniform vec3 brush_position;
uniform float brush_size;
uniform float map_size;
uniform float y_scale;

out vec4 frag_color;

void main() {
	// Forward-difference normal from the height texture.
	float texel = 1.0 / map_size;
	float hl = texture(height_map, height_uv - vec2(texel, 0.0)).r;
	float hr = texture(height_map, height_uv + vec2(texel, 0.0)).r;
	float hd = texture(height_map, height_uv - vec2(0.0, texel)).r;
	float hu = texture(height_map, height_uv + vec2(0.0, texel)).r;
	vec3 normal = normalize(vec3((hl - hr) * y_scale, 2.0, (hd - hu) * y_scale));

	vec3 light_dir = normalize(vec3(0.4, 1.0, 0.3));
	float light = max(dot(normal, light_dir), 0.0) * 0.8 + 0.2;

	float h = texture(height_map, height_uv).r;
	vec3 low = vec3(0.24, 0.36, 0.18);
	vec3 high = vec3(0.52, 0.47, 0.38);
	vec3 color = mix(low, high, h) * light;

	// Brush ring highlight.
	float brush_dist = distance(world_pos.xz, brush_position.xz);
	if (brush_dist < brush_size) {
		float ring = smoothstep(brush_size * 0.7, brush_size, brush_dist);
		color = mix(color, vec3(1.0, 0.55, 0.1), ring * 0.6 + 0.1);
	}

	frag_color = vec4(color, 1.0);
}
`
)

// Grass shaders. Each draw renders a batched mesh of up to 50 copies; the
// per-vertex copy index selects the instance transform.
const (
	grassVertexShader = `
#version 410 core

layout (location = 0) in vec3 position;
layout (location = 1) in vec3 normal;
layout (location = 2) in vec2 uv;
layout (location = 3) in float copy_index;

uniform mat4 view_proj;
uniform mat4 grass_matrices[50];

out vec3 grass_normal;
out vec2 grass_uv;

void main() {
	mat4 m = grass_matrices[int(copy_index)];
	grass_normal = mat3(m) * normal;
	grass_uv = uv;
	gl_Position = view_proj * m * vec4(position, 1.0);
}
`

	grassFragmentShader = `
#version 410 core

in vec3 grass_normal;
in vec2 grass_uv;

out vec4 frag_color;

void main() {
	vec3 light_dir = normalize(vec3(0.4, 1.0, 0.3));
	float light = abs(dot(normalize(grass_normal), light_dir)) * 0.7 + 0.3;
	vec3 base = mix(vec3(0.18, 0.34, 0.12), vec3(0.36, 0.52, 0.2), grass_uv.y);
	frag_color = vec4(base * light, 1.0);
}
`
)
