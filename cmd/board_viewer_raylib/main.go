// Command board_viewer_raylib is a 3D spectator: it plays a run with the
// autoplay build order and draws the board as blocks.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"spoon-defense/internal/app"
	"spoon-defense/internal/autoplay"
	"spoon-defense/internal/component"
	"spoon-defense/internal/config"
	"spoon-defense/internal/defs"
	"spoon-defense/internal/logging"
	"spoon-defense/pkg/gridmap"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	// world units per grid cell
	cellSize = 10.0
)

func Vector3Lerp(v1, v2 rl.Vector3, t float32) rl.Vector3 {
	return rl.Vector3Add(v1, rl.Vector3Scale(rl.Vector3Subtract(v2, v1), t))
}

func ColorLerp(c1, c2 rl.Color, t float32) rl.Color {
	return rl.NewColor(
		uint8(float32(c1.R)*(1-t)+float32(c2.R)*t),
		uint8(float32(c1.G)*(1-t)+float32(c2.G)*t),
		uint8(float32(c1.B)*(1-t)+float32(c2.B)*t),
		uint8(float32(c1.A)*(1-t)+float32(c2.A)*t),
	)
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

type viewer struct {
	board   *gridmap.GridMap
	offsetX float32
	offsetZ float32
}

// world maps a grid point onto the ground plane, centered on the origin.
func (v *viewer) world(p gridmap.Point, y float32) rl.Vector3 {
	return rl.NewVector3(float32(p.X)*cellSize-v.offsetX, y, float32(p.Y)*cellSize-v.offsetZ)
}

func (v *viewer) drawBoard() {
	grass := rl.NewColor(104, 150, 84, 255)
	grassAlt := rl.NewColor(96, 140, 78, 255)
	road := rl.NewColor(196, 170, 120, 255)
	turn := rl.NewColor(180, 150, 100, 255)

	tiles := v.board.PathTiles()
	entry, exit := tiles[0], tiles[len(tiles)-1]
	for row := 0; row < v.board.Rows; row++ {
		for col := 0; col < v.board.Cols; col++ {
			c := grass
			if (col+row)%2 == 1 {
				c = grassAlt
			}
			height := float32(2)
			switch t := (gridmap.Tile{Col: col, Row: row}); {
			case t == entry:
				c = rl.SkyBlue
			case t == exit:
				c = rl.Red
			case v.board.IsTurn(col, row):
				c, height = turn, 1
			case v.board.IsPath(col, row):
				c, height = road, 1
			}
			pos := v.world(gridmap.Tile{Col: col, Row: row}.Center(), -height/2)
			rl.DrawCube(pos, cellSize, height, cellSize, c)
			rl.DrawCubeWires(pos, cellSize, height, cellSize, rl.DarkGray)
		}
	}
}

func (v *viewer) drawSnapshot(snap *app.Snapshot, background rl.Color) {
	for _, vx := range snap.Vortexes {
		c := ColorLerp(rl.Purple, background, 1-float32(vx.RemainingRatio))
		rl.DrawCircle3D(v.world(vx.Position, 0.2), float32(vx.Radius)*cellSize, rl.NewVector3(1, 0, 0), 90, c)
	}
	for _, t := range snap.Towers {
		c := toColor(t.Color)
		if t.Disabled {
			c = rl.Gray
		} else if t.Suppressed {
			c = ColorLerp(c, rl.Purple, 0.4)
		}
		r := float32(t.Radius) * cellSize
		rl.DrawCylinder(v.world(t.Position, 0), r, r*0.8, 8, 8, c)
		rl.DrawCylinderWires(v.world(t.Position, 0), r, r*0.8, 8, 8, rl.DarkGray)
	}
	for _, e := range snap.Enemies {
		c := toColor(e.Color)
		if e.Slowed {
			c = ColorLerp(c, rl.SkyBlue, 0.5)
		}
		if e.Flash > 0 {
			c = ColorLerp(c, rl.White, float32(e.Flash))
		}
		r := float32(e.Radius) * cellSize
		rl.DrawSphere(v.world(e.Position, r), r, c)
		bar := v.world(e.Position, 2*r+2)
		rl.DrawCube(bar, cellSize*0.8*float32(e.HealthRatio), 0.6, 0.6, rl.Green)
	}
	for _, p := range snap.Projectiles {
		c := rl.Yellow
		if p.Splash {
			c = rl.Orange
		}
		rl.DrawSphere(v.world(p.Position, 4), 0.8, c)
	}
	for _, s := range snap.Shards {
		rl.DrawCube(v.world(s.Position, 1), 1, 1, 1, ColorLerp(background, rl.Beige, float32(s.Alpha)))
	}
}

func drawHUD(snap *app.Snapshot) {
	run := snap.Run
	rl.DrawText(fmt.Sprintf("Gold %d   Base %d/%d   Wave %d/%d   x%.0f",
		run.Gold, run.BaseHealth, run.MaxBaseHealth, run.WaveNumber, run.WaveTotal, run.TimeMultiplier), 10, 10, 20, rl.White)
	if snap.Boss != nil {
		rl.DrawRectangle(screenWidth/2-200, 40, 400, 14, rl.DarkGray)
		rl.DrawRectangle(screenWidth/2-200, 40, int32(400*snap.Boss.HealthRatio), 14, rl.Maroon)
		rl.DrawText(snap.Boss.Name, screenWidth/2-200, 58, 16, rl.White)
	}
	if run.Outcome != component.Playing {
		msg := "Victory - press R to restart"
		if run.Outcome == component.Lost {
			msg = "Defeat - press R to restart"
		}
		w := rl.MeasureText(msg, 40)
		rl.DrawText(msg, screenWidth/2-w/2, screenHeight/2-20, 40, rl.RayWhite)
	}
	rl.DrawText("Q/E rotate, wheel angle, F speed, R restart", 10, screenHeight-30, 20, rl.LightGray)
	rl.DrawFPS(screenWidth-100, 10)
}

func main() {
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	catalogDir := flag.String("catalog", "", "directory with enemies/towers/waves/economy JSON (default: built-in)")
	flag.Parse()

	logging.Setup(os.Stderr, os.Getenv("LOG_LEVEL"))

	var catalog *defs.Catalog
	var err error
	if *catalogDir == "" {
		catalog, err = defs.Default()
	} else {
		catalog, err = defs.LoadDir(*catalogDir)
	}
	if err != nil {
		log.Fatal(err)
	}
	board := gridmap.NewDefault()
	game := app.NewGame(catalog, board, *seed)
	player := autoplay.New(game, autoplay.DefaultPlan)

	v := &viewer{
		board:   board,
		offsetX: float32(board.Cols) * cellSize / 2,
		offsetZ: float32(board.Rows) * cellSize / 2,
	}
	background := rl.NewColor(10, 10, 20, 255)

	rl.InitWindow(screenWidth, screenHeight, "Spoon Defense Board Viewer | Q/E - Rotate, Mouse Wheel - Change Angle")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective

	isoPos := rl.NewVector3(80, 140, 140)
	topDownPos := rl.NewVector3(0, 220, 0.1)
	target := rl.NewVector3(0, 0, 0)
	isoFovy := float32(55.0)
	topDownFovy := float32(45.0)
	cameraAngleT := float32(0.3)

	for !rl.WindowShouldClose() {
		if rl.IsKeyDown(rl.KeyQ) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, -0.02)
		}
		if rl.IsKeyDown(rl.KeyE) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, 0.02)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			cameraAngleT += wheel * 0.05
			if cameraAngleT > 0.99 {
				cameraAngleT = 0.99
			} else if cameraAngleT < 0.0 {
				cameraAngleT = 0.0
			}
		}
		if rl.IsKeyPressed(rl.KeyF) {
			game.ToggleSpeed()
		}
		if rl.IsKeyPressed(rl.KeyR) {
			game.Restart()
			player.Reset()
		}

		camera.Position = Vector3Lerp(isoPos, topDownPos, cameraAngleT)
		camera.Target = target
		camera.Fovy = isoFovy + (topDownFovy-isoFovy)*cameraAngleT

		dt := float64(rl.GetFrameTime())
		if dt > config.MaxDeltaTime {
			dt = config.MaxDeltaTime
		}
		player.Tick()
		game.Advance(dt * 1000)
		snap := game.Snapshot()

		rl.BeginDrawing()
		rl.ClearBackground(background)
		rl.BeginMode3D(camera)
		v.drawBoard()
		v.drawSnapshot(&snap, background)
		rl.EndMode3D()
		drawHUD(&snap)
		rl.EndDrawing()
	}
}
